package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/service"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// CPLHandler wires HTTP endpoints to the learning-outcome service.
type CPLHandler struct {
	service *service.CPLService
}

// NewCPLHandler creates a new handler.
func NewCPLHandler(svc *service.CPLService) *CPLHandler {
	return &CPLHandler{service: svc}
}

// Create godoc
// @Summary Create learning outcome
// @Tags CPL
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param payload body service.CreateCPLRequest true "CPL payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cpl/{id_kurikulum} [post]
func (h *CPLHandler) Create(c *gin.Context) {
	var req service.CreateCPLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cpl payload"))
		return
	}

	cpl, err := h.service.Create(c.Request.Context(), c.Param("id_kurikulum"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cpl)
}

// Get godoc
// @Summary Get learning outcome detail
// @Description Return a CPL with its curriculum, indicators and linked courses
// @Tags CPL
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cpl/{id_kurikulum}/{id_cpl} [get]
func (h *CPLHandler) Get(c *gin.Context) {
	detail, err := h.service.GetDetail(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Update godoc
// @Summary Update learning outcome
// @Tags CPL
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Param payload body service.UpdateCPLRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cpl/{id_kurikulum}/{id_cpl} [patch]
func (h *CPLHandler) Update(c *gin.Context) {
	var req service.UpdateCPLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cpl payload"))
		return
	}

	cpl, err := h.service.Update(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cpl)
}

// Delete godoc
// @Summary Delete learning outcome
// @Description Remove a CPL and all of its indicators and course links
// @Tags CPL
// @Security BearerAuth
// @Param id_kurikulum path string true "Curriculum ID"
// @Param id_cpl path string true "CPL code"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /cpl/{id_kurikulum}/{id_cpl} [delete]
func (h *CPLHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_kurikulum"), c.Param("id_cpl")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
