package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/service"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// CurriculumHandler wires HTTP endpoints to the curriculum service.
type CurriculumHandler struct {
	service *service.CurriculumService
	exports *service.ExportService
}

// NewCurriculumHandler creates a new handler.
func NewCurriculumHandler(svc *service.CurriculumService, exports *service.ExportService) *CurriculumHandler {
	return &CurriculumHandler{service: svc, exports: exports}
}

// Create godoc
// @Summary Create curriculum
// @Tags Kurikulum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateCurriculumRequest true "Curriculum payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /kurikulum [post]
func (h *CurriculumHandler) Create(c *gin.Context) {
	var req service.CreateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid curriculum payload"))
		return
	}

	curriculum, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, curriculum)
}

// List godoc
// @Summary List curricula
// @Tags Kurikulum
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /kurikulum [get]
func (h *CurriculumHandler) List(c *gin.Context) {
	curricula, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curricula)
}

// Get godoc
// @Summary Get curriculum detail
// @Description Return a curriculum with its learning outcome list
// @Tags Kurikulum
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /kurikulum/{id_kurikulum} [get]
func (h *CurriculumHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id_kurikulum"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Update godoc
// @Summary Update curriculum
// @Tags Kurikulum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param payload body service.UpdateCurriculumRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /kurikulum/{id_kurikulum} [patch]
func (h *CurriculumHandler) Update(c *gin.Context) {
	var req service.UpdateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid curriculum payload"))
		return
	}

	curriculum, err := h.service.Update(c.Request.Context(), c.Param("id_kurikulum"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curriculum)
}

// Delete godoc
// @Summary Delete curriculum
// @Description Remove a curriculum and all of its outcomes, indicators and course links
// @Tags Kurikulum
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /kurikulum/{id_kurikulum} [delete]
func (h *CurriculumHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_kurikulum")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export outcome matrix
// @Description Download the curriculum's outcome matrix as CSV or PDF
// @Tags Kurikulum
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /kurikulum/{id_kurikulum}/export [get]
func (h *CurriculumHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	file, err := h.exports.OutcomeMatrix(c.Request.Context(), c.Param("id_kurikulum"), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
