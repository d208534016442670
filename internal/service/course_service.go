package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course, links []models.CourseOutcome) error
	Update(ctx context.Context, course *models.Course, links []models.CourseOutcome, replaceLinks bool) error
	ListOutcomes(ctx context.Context, courseCode string) ([]models.CourseCPLSummary, error)
	DeleteCascade(ctx context.Context, code string) error
}

type courseCPLRepository interface {
	Exists(ctx context.Context, curriculumID, code string) (bool, error)
}

type courseIndicatorRepository interface {
	ListByCPL(ctx context.Context, curriculumID, cplCode string) ([]models.IndicatorSummary, error)
}

// CourseOutcomeInput references a CPL in course payloads.
type CourseOutcomeInput struct {
	CurriculumID string `json:"id_kurikulum" validate:"required"`
	CPLCode      string `json:"id_cpl" validate:"required"`
}

// CreateCourseRequest captures fields for creating a course with its
// outcome links.
type CreateCourseRequest struct {
	Code     string               `json:"id_matkul" validate:"required"`
	Name     string               `json:"mata_kuliah" validate:"required"`
	Credits  int                  `json:"sks" validate:"required,gt=0"`
	Semester int                  `json:"semester" validate:"required,gt=0"`
	Outcomes []CourseOutcomeInput `json:"cpl_list" validate:"dive"`
}

// UpdateCourseRequest patches course fields; a non-nil outcome list fully
// replaces the existing links.
type UpdateCourseRequest struct {
	Name     *string               `json:"mata_kuliah"`
	Credits  *int                  `json:"sks"`
	Semester *int                  `json:"semester"`
	Outcomes *[]CourseOutcomeInput `json:"cpl_list"`
}

// CourseResult is a course together with its outcome links.
type CourseResult struct {
	Course   models.Course          `json:"matkul"`
	Outcomes []models.CourseOutcome `json:"relasi"`
}

// CourseService handles course workflows.
type CourseService struct {
	repo       courseRepository
	cpls       courseCPLRepository
	indicators courseIndicatorRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(repo courseRepository, cpls courseCPLRepository, indicators courseIndicatorRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cpls: cpls, indicators: indicators, validator: validate, logger: logger}
}

// Create adds a course and its outcome links. Codes are normalised to
// uppercase before any check.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*CourseResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	for i := range req.Outcomes {
		req.Outcomes[i].CPLCode = strings.ToUpper(strings.TrimSpace(req.Outcomes[i].CPLCode))
	}

	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course code already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course code")
	}

	links, err := s.resolveLinks(ctx, req.Code, req.Outcomes)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Code:     req.Code,
		Name:     req.Name,
		Credits:  req.Credits,
		Semester: req.Semester,
	}
	if err := s.repo.Create(ctx, course, links); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	return &CourseResult{Course: *course, Outcomes: links}, nil
}

// Update patches a course and optionally replaces its outcome links
// wholesale; an empty supplied list unlinks the course from every CPL.
func (s *CourseService) Update(ctx context.Context, code string, req UpdateCourseRequest) (*CourseResult, error) {
	course, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "mata_kuliah must not be empty")
		}
		course.Name = *req.Name
	}
	if req.Credits != nil {
		if *req.Credits <= 0 {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "sks must be a positive integer")
		}
		course.Credits = *req.Credits
	}
	if req.Semester != nil {
		if *req.Semester <= 0 {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "semester must be a positive integer")
		}
		course.Semester = *req.Semester
	}

	var newLinks []models.CourseOutcome
	if req.Outcomes != nil {
		outcomes := *req.Outcomes
		for i := range outcomes {
			outcomes[i].CPLCode = strings.ToUpper(strings.TrimSpace(outcomes[i].CPLCode))
		}
		newLinks, err = s.resolveLinks(ctx, course.Code, outcomes)
		if err != nil {
			return nil, err
		}
	}

	// Field changes and the link swap commit together: a failed update must
	// not leave the new link set behind.
	if err := s.repo.Update(ctx, course, newLinks, req.Outcomes != nil); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}

	current, err := s.repo.ListOutcomes(ctx, course.Code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course links")
	}
	links := make([]models.CourseOutcome, 0, len(current))
	for _, o := range current {
		links = append(links, models.CourseOutcome{CurriculumID: o.CurriculumID, CPLCode: o.Code, CourseCode: course.Code})
	}

	return &CourseResult{Course: *course, Outcomes: links}, nil
}

// GetDetail returns a course with each linked CPL and its indicator list.
func (s *CourseService) GetDetail(ctx context.Context, code string) (*models.CourseDetail, error) {
	course, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	linked, err := s.repo.ListOutcomes(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course links")
	}

	detail := &models.CourseDetail{Course: *course, Outcomes: []models.CourseCPL{}}
	for _, cpl := range linked {
		indicators, err := s.indicators.ListByCPL(ctx, cpl.CurriculumID, cpl.Code)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load indicators")
		}
		if indicators == nil {
			indicators = []models.IndicatorSummary{}
		}
		detail.Outcomes = append(detail.Outcomes, models.CourseCPL{
			CurriculumID: cpl.CurriculumID,
			Code:         cpl.Code,
			Description:  cpl.Description,
			Indicators:   indicators,
		})
	}

	return detail, nil
}

// List returns every course with its linked outcome summaries.
func (s *CourseService) List(ctx context.Context) ([]models.CourseListItem, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	items := make([]models.CourseListItem, 0, len(courses))
	for _, course := range courses {
		outcomes, err := s.repo.ListOutcomes(ctx, course.Code)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course links")
		}
		if outcomes == nil {
			outcomes = []models.CourseCPLSummary{}
		}
		items = append(items, models.CourseListItem{Course: course, Outcomes: outcomes})
	}

	return items, nil
}

// Delete removes a course after clearing its join rows.
func (s *CourseService) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.FindByCode(ctx, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	if err := s.repo.DeleteCascade(ctx, code); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// resolveLinks verifies every referenced CPL exists and builds join rows.
func (s *CourseService) resolveLinks(ctx context.Context, courseCode string, inputs []CourseOutcomeInput) ([]models.CourseOutcome, error) {
	links := make([]models.CourseOutcome, 0, len(inputs))
	for _, input := range inputs {
		if err := validateCurriculumID(input.CurriculumID); err != nil {
			return nil, err
		}
		exists, err := s.cpls.Exists(ctx, input.CurriculumID, input.CPLCode)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cpl")
		}
		if !exists {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("cpl %s in curriculum %s not found", input.CPLCode, input.CurriculumID))
		}
		links = append(links, models.CourseOutcome{
			CurriculumID: input.CurriculumID,
			CPLCode:      input.CPLCode,
			CourseCode:   courseCode,
		})
	}
	return links, nil
}
