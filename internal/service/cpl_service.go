package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

var cplCodePattern = regexp.MustCompile(`^CPL-\d{2}$`)

type cplRepository interface {
	Find(ctx context.Context, curriculumID, code string) (*models.CPL, error)
	Exists(ctx context.Context, curriculumID, code string) (bool, error)
	Create(ctx context.Context, item *models.CPL) error
	UpdateDescription(ctx context.Context, curriculumID, code, description string) error
	DeleteCascade(ctx context.Context, curriculumID, code string) error
	ListCourses(ctx context.Context, curriculumID, code string) ([]models.CourseSummary, error)
}

type cplCurriculumRepository interface {
	FindByID(ctx context.Context, id string) (*models.Curriculum, error)
}

type cplIndicatorRepository interface {
	ListByCPL(ctx context.Context, curriculumID, cplCode string) ([]models.IndicatorSummary, error)
}

// CreateCPLRequest captures fields for creating a learning outcome.
type CreateCPLRequest struct {
	Code        string `json:"id_cpl"`
	Description string `json:"deskripsi"`
}

// UpdateCPLRequest patches the outcome description.
type UpdateCPLRequest struct {
	Description *string `json:"deskripsi"`
}

// CPLService handles learning-outcome workflows.
type CPLService struct {
	repo       cplRepository
	curricula  cplCurriculumRepository
	indicators cplIndicatorRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCPLService creates a new CPL service.
func NewCPLService(repo cplRepository, curricula cplCurriculumRepository, indicators cplIndicatorRepository, validate *validator.Validate, logger *zap.Logger) *CPLService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CPLService{repo: repo, curricula: curricula, indicators: indicators, validator: validate, logger: logger}
}

// Create adds a CPL under an existing curriculum.
func (s *CPLService) Create(ctx context.Context, curriculumID string, req CreateCPLRequest) (*models.CPL, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	if _, err := s.curricula.FindByID(ctx, curriculumID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curriculum not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	if strings.TrimSpace(req.Code) == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "id_cpl must not be empty")
	}
	if !cplCodePattern.MatchString(req.Code) {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "id_cpl must match the pattern 'CPL-XX' (two digits)")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "deskripsi must not be empty")
	}

	exists, err := s.repo.Exists(ctx, curriculumID, req.Code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cpl code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "id_cpl already used in this curriculum")
	}

	item := &models.CPL{
		CurriculumID: curriculumID,
		Code:         req.Code,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create cpl")
	}
	return item, nil
}

// GetDetail assembles the CPL with its parent curriculum, indicators and
// the distinct courses reachable through the join table.
func (s *CPLService) GetDetail(ctx context.Context, curriculumID, code string) (*models.CPLDetail, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	item, err := s.repo.Find(ctx, curriculumID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "cpl not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load cpl")
	}

	detail := &models.CPLDetail{
		CPL:        models.CPLSummary{Code: item.Code, Description: item.Description},
		Indicators: []models.IndicatorSummary{},
		Courses:    []models.CourseSummary{},
	}

	curriculum, err := s.curricula.FindByID(ctx, curriculumID)
	if err == nil {
		detail.Curriculum = &models.CurriculumSummary{ID: curriculum.ID, Name: curriculum.Name, Revision: curriculum.Revision}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	indicators, err := s.indicators.ListByCPL(ctx, curriculumID, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load indicators")
	}
	if indicators != nil {
		detail.Indicators = indicators
	}

	courses, err := s.repo.ListCourses(ctx, curriculumID, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked courses")
	}
	if courses != nil {
		detail.Courses = courses
	}

	return detail, nil
}

// Update changes the description, the only mutable CPL attribute.
func (s *CPLService) Update(ctx context.Context, curriculumID, code string, req UpdateCPLRequest) (*models.CPL, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	item, err := s.repo.Find(ctx, curriculumID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "cpl not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load cpl")
	}

	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "deskripsi must not be empty")
		}
		item.Description = *req.Description
		if err := s.repo.UpdateDescription(ctx, curriculumID, code, item.Description); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update cpl")
		}
	}

	return item, nil
}

// Delete removes a CPL and everything beneath it.
func (s *CPLService) Delete(ctx context.Context, curriculumID, code string) error {
	if err := validateCurriculumID(curriculumID); err != nil {
		return err
	}

	if _, err := s.repo.Find(ctx, curriculumID, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "cpl not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load cpl")
	}

	if err := s.repo.DeleteCascade(ctx, curriculumID, code); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete cpl")
	}
	return nil
}
