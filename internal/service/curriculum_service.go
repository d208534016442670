package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type curriculumRepository interface {
	List(ctx context.Context) ([]models.Curriculum, error)
	FindByID(ctx context.Context, id string) (*models.Curriculum, error)
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	Create(ctx context.Context, item *models.Curriculum) error
	Update(ctx context.Context, item *models.Curriculum) error
	DeleteCascade(ctx context.Context, id string) error
	ListCPL(ctx context.Context, curriculumID string) ([]models.CPLSummary, error)
}

// CreateCurriculumRequest captures fields for creating curricula.
type CreateCurriculumRequest struct {
	Name     string                  `json:"nama_kurikulum" validate:"required"`
	Revision string                  `json:"revisi"`
	Status   models.CurriculumStatus `json:"status_kurikulum" validate:"required"`
}

// UpdateCurriculumRequest patches curriculum fields; nil fields are left
// untouched.
type UpdateCurriculumRequest struct {
	Name     *string                  `json:"nama_kurikulum"`
	Revision *string                  `json:"revisi"`
	Status   *models.CurriculumStatus `json:"status_kurikulum"`
}

// validateCurriculumID rejects ids that cannot be UUIDs before they reach
// the UUID-typed column, which would otherwise answer with a cast error.
func validateCurriculumID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid curriculum id")
	}
	return nil
}

// CurriculumService handles curriculum domain workflows.
type CurriculumService struct {
	repo      curriculumRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCurriculumService creates a new curriculum service.
func NewCurriculumService(repo curriculumRepository, validate *validator.Validate, logger *zap.Logger) *CurriculumService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurriculumService{repo: repo, validator: validate, logger: logger}
}

// Create adds a curriculum enforcing the global name uniqueness.
func (s *CurriculumService) Create(ctx context.Context, req CreateCurriculumRequest) (*models.Curriculum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid curriculum payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status_kurikulum must be 'aktif' or 'nonaktif'")
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check curriculum name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "curriculum name already exists")
	}

	item := &models.Curriculum{
		Name:     req.Name,
		Revision: req.Revision,
		Status:   req.Status,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create curriculum")
	}
	return item, nil
}

// List returns every curriculum.
func (s *CurriculumService) List(ctx context.Context) ([]models.Curriculum, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list curricula")
	}
	return items, nil
}

// Get returns a curriculum with its CPL list. A malformed UUID is a 400
// before any lookup happens.
func (s *CurriculumService) Get(ctx context.Context, id string) (*models.CurriculumDetail, error) {
	if err := validateCurriculumID(id); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curriculum not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	outcomes, err := s.repo.ListCPL(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum outcomes")
	}
	if outcomes == nil {
		outcomes = []models.CPLSummary{}
	}

	return &models.CurriculumDetail{Curriculum: *item, Outcomes: outcomes}, nil
}

// Update applies the supplied fields and bumps the updated timestamp.
func (s *CurriculumService) Update(ctx context.Context, id string, req UpdateCurriculumRequest) (*models.Curriculum, error) {
	if err := validateCurriculumID(id); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curriculum not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status_kurikulum must be 'aktif' or 'nonaktif'")
		}
		item.Status = *req.Status
	}
	if req.Name != nil {
		exists, err := s.repo.ExistsByName(ctx, *req.Name, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check curriculum name")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "curriculum name already exists")
		}
		item.Name = *req.Name
	}
	if req.Revision != nil {
		item.Revision = *req.Revision
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update curriculum")
	}
	return item, nil
}

// Delete removes a curriculum and everything beneath it.
func (s *CurriculumService) Delete(ctx context.Context, id string) error {
	if err := validateCurriculumID(id); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "curriculum not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete curriculum")
	}
	return nil
}
