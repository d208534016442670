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

// The CPL digits inside the indicator code are a naming convention only;
// they are not cross-checked against the parent's actual code.
var indicatorCodePattern = regexp.MustCompile(`^IND-\d{2}-\d{2}$`)

type indicatorRepository interface {
	Find(ctx context.Context, curriculumID, cplCode, code string) (*models.Indicator, error)
	Exists(ctx context.Context, curriculumID, cplCode, code string) (bool, error)
	Create(ctx context.Context, item *models.Indicator) error
	UpdateDescription(ctx context.Context, curriculumID, cplCode, code, description string) error
	Move(ctx context.Context, curriculumID, oldCPLCode, code string, replacement *models.Indicator) error
	Delete(ctx context.Context, curriculumID, cplCode, code string) error
}

type indicatorCPLRepository interface {
	Exists(ctx context.Context, curriculumID, code string) (bool, error)
}

// CreateIndicatorRequest captures fields for creating an indicator.
type CreateIndicatorRequest struct {
	Code        string `json:"id_indikator"`
	Description string `json:"deskripsi"`
}

// UpdateIndicatorRequest patches the description and optionally re-parents
// the indicator to another CPL of the same curriculum.
type UpdateIndicatorRequest struct {
	Description *string `json:"deskripsi"`
	NewCPLCode  *string `json:"id_cpl_baru"`
}

// IndicatorService handles outcome-indicator workflows.
type IndicatorService struct {
	repo      indicatorRepository
	cpls      indicatorCPLRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewIndicatorService creates a new indicator service.
func NewIndicatorService(repo indicatorRepository, cpls indicatorCPLRepository, validate *validator.Validate, logger *zap.Logger) *IndicatorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndicatorService{repo: repo, cpls: cpls, validator: validate, logger: logger}
}

// Create adds an indicator under an existing CPL.
func (s *IndicatorService) Create(ctx context.Context, curriculumID, cplCode string, req CreateIndicatorRequest) (*models.Indicator, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	parentExists, err := s.cpls.Exists(ctx, curriculumID, cplCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cpl")
	}
	if !parentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "cpl not found")
	}

	if strings.TrimSpace(req.Code) == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "id_indikator must not be empty")
	}
	if !indicatorCodePattern.MatchString(req.Code) {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "id_indikator must match the pattern 'IND-XX-YY'")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "deskripsi must not be empty")
	}

	exists, err := s.repo.Exists(ctx, curriculumID, cplCode, req.Code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check indicator code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "id_indikator already used under this cpl")
	}

	item := &models.Indicator{
		CurriculumID: curriculumID,
		CPLCode:      cplCode,
		Code:         req.Code,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create indicator")
	}
	return item, nil
}

// Update patches an indicator. When a new CPL code is supplied the
// composite key changes, which is realised as delete-old/insert-new inside
// one unit of work; the description carries over unless also updated.
func (s *IndicatorService) Update(ctx context.Context, curriculumID, cplCode, code string, req UpdateIndicatorRequest) (*models.Indicator, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	item, err := s.repo.Find(ctx, curriculumID, cplCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "indicator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load indicator")
	}

	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "deskripsi must not be empty")
		}
		item.Description = *req.Description
	}

	if req.NewCPLCode != nil && *req.NewCPLCode != cplCode {
		targetExists, err := s.cpls.Exists(ctx, curriculumID, *req.NewCPLCode)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check target cpl")
		}
		if !targetExists {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "target cpl not found")
		}

		taken, err := s.repo.Exists(ctx, curriculumID, *req.NewCPLCode, code)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check indicator code")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrConflict, "id_indikator already used under the target cpl")
		}

		replacement := &models.Indicator{
			CurriculumID: curriculumID,
			CPLCode:      *req.NewCPLCode,
			Code:         code,
			Description:  item.Description,
		}
		if err := s.repo.Move(ctx, curriculumID, cplCode, code, replacement); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move indicator")
		}
		return replacement, nil
	}

	if req.Description != nil {
		if err := s.repo.UpdateDescription(ctx, curriculumID, cplCode, code, item.Description); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update indicator")
		}
	}

	return item, nil
}

// Delete removes an indicator.
func (s *IndicatorService) Delete(ctx context.Context, curriculumID, cplCode, code string) error {
	if err := validateCurriculumID(curriculumID); err != nil {
		return err
	}

	if _, err := s.repo.Find(ctx, curriculumID, cplCode, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "indicator not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load indicator")
	}

	if err := s.repo.Delete(ctx, curriculumID, cplCode, code); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete indicator")
	}
	return nil
}
