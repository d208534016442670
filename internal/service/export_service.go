package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/export"
)

type exportCurriculumRepository interface {
	FindByID(ctx context.Context, id string) (*models.Curriculum, error)
	ListCPL(ctx context.Context, curriculumID string) ([]models.CPLSummary, error)
}

type exportCPLRepository interface {
	ListCourses(ctx context.Context, curriculumID, code string) ([]models.CourseSummary, error)
}

type exportIndicatorRepository interface {
	ListByCPL(ctx context.Context, curriculumID, cplCode string) ([]models.IndicatorSummary, error)
}

// ExportFile is a rendered export ready to be served as a download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the outcome matrix of a curriculum as CSV or PDF.
type ExportService struct {
	curricula  exportCurriculumRepository
	cpls       exportCPLRepository
	indicators exportIndicatorRepository
	logger     *zap.Logger
}

// NewExportService creates a new export service.
func NewExportService(curricula exportCurriculumRepository, cpls exportCPLRepository, indicators exportIndicatorRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		curricula:  curricula,
		cpls:       cpls,
		indicators: indicators,
		logger:     logger,
	}
}

// OutcomeMatrix builds one row per CPL with its indicator count and linked
// course codes, rendered in the requested format.
func (s *ExportService) OutcomeMatrix(ctx context.Context, curriculumID, format string) (*ExportFile, error) {
	if err := validateCurriculumID(curriculumID); err != nil {
		return nil, err
	}

	format = strings.ToLower(format)
	if format != "csv" && format != "pdf" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be 'csv' or 'pdf'")
	}

	curriculum, err := s.curricula.FindByID(ctx, curriculumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curriculum not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum")
	}

	outcomes, err := s.curricula.ListCPL(ctx, curriculumID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load curriculum outcomes")
	}

	table := export.Table{Columns: []string{"id_cpl", "deskripsi", "jumlah_indikator", "mata_kuliah"}}
	for _, outcome := range outcomes {
		indicators, err := s.indicators.ListByCPL(ctx, curriculumID, outcome.Code)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load indicators")
		}
		courses, err := s.cpls.ListCourses(ctx, curriculumID, outcome.Code)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked courses")
		}

		codes := make([]string, 0, len(courses))
		for _, course := range courses {
			codes = append(codes, course.Code)
		}

		table.Rows = append(table.Rows, []string{
			outcome.Code,
			outcome.Description,
			strconv.Itoa(len(indicators)),
			strings.Join(codes, ", "),
		})
	}

	switch format {
	case "pdf":
		content, err := export.RenderPDF(table, curriculum.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: fmt.Sprintf("outcome-matrix-%s.pdf", curriculumID)}, nil
	default:
		content, err := export.RenderCSV(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: fmt.Sprintf("outcome-matrix-%s.csv", curriculumID)}, nil
	}
}
