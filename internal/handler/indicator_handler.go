package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/service"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// IndicatorHandler wires HTTP endpoints to the indicator service.
type IndicatorHandler struct {
	service *service.IndicatorService
}

// NewIndicatorHandler creates a new handler.
func NewIndicatorHandler(svc *service.IndicatorService) *IndicatorHandler {
	return &IndicatorHandler{service: svc}
}

// Create godoc
// @Summary Create outcome indicator
// @Tags Indikator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Param payload body service.CreateIndicatorRequest true "Indicator payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /indikator/{id_kurikulum}/{id_cpl} [post]
func (h *IndicatorHandler) Create(c *gin.Context) {
	var req service.CreateIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid indicator payload"))
		return
	}

	indicator, err := h.service.Create(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, indicator)
}

// Update godoc
// @Summary Update outcome indicator
// @Description Patch the description and optionally move the indicator to another CPL
// @Tags Indikator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Param id_indikator path string true "Indicator code"
// @Param payload body service.UpdateIndicatorRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /indikator/{id_kurikulum}/{id_cpl}/{id_indikator} [patch]
func (h *IndicatorHandler) Update(c *gin.Context) {
	var req service.UpdateIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid indicator payload"))
		return
	}

	indicator, err := h.service.Update(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl"), c.Param("id_indikator"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, indicator)
}

// Delete godoc
// @Summary Delete outcome indicator
// @Tags Indikator
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Param id_indikator path string true "Indicator code"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /indikator/{id_kurikulum}/{id_cpl}/{id_indikator} [delete]
func (h *IndicatorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl"), c.Param("id_indikator")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
