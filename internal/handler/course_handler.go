package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/service"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// CourseHandler wires HTTP endpoints to the course service.
type CourseHandler struct {
	service *service.CourseService
}

// NewCourseHandler creates a new handler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Create godoc
// @Summary Create course
// @Description Create a course together with its learning-outcome links
// @Tags Matkul
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /matkul [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List godoc
// @Summary List courses
// @Tags Matkul
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /matkul [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Get course detail
// @Description Return a course with each linked CPL and its indicators
// @Tags Matkul
// @Produce json
// @Security BearerAuth
// @Param id_matkul path string true "Course code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /matkul/{id_matkul} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	detail, err := h.service.GetDetail(c.Request.Context(), c.Param("id_matkul"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Update godoc
// @Summary Update course
// @Description Patch course fields; a supplied cpl_list replaces all links
// @Tags Matkul
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_matkul path string true "Course code"
// @Param payload body service.UpdateCourseRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /matkul/{id_matkul} [patch]
func (h *CourseHandler) Update(c *gin.Context) {
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id_matkul"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete course
// @Description Remove a course and all of its outcome links
// @Tags Matkul
// @Security BearerAuth
// @Param id_matkul path string true "Course code"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /matkul/{id_matkul} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_matkul")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
