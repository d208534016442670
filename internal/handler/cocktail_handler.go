package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/service"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// CocktailHandler exposes the external cocktail catalogue pass-through.
type CocktailHandler struct {
	service *service.CocktailService
}

// NewCocktailHandler creates a new handler.
func NewCocktailHandler(svc *service.CocktailService) *CocktailHandler {
	return &CocktailHandler{service: svc}
}

// Search godoc
// @Summary Search cocktails
// @Tags Cocktails
// @Produce json
// @Param name query string false "Cocktail name"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/cocktails [get]
func (h *CocktailHandler) Search(c *gin.Context) {
	data, err := h.service.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}

// Lookup godoc
// @Summary Get cocktail by id
// @Tags Cocktails
// @Produce json
// @Param cocktail_id path string true "Cocktail ID"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/cocktails/{cocktail_id} [get]
func (h *CocktailHandler) Lookup(c *gin.Context) {
	data, err := h.service.Lookup(c.Request.Context(), c.Param("cocktail_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}

// ByLetter godoc
// @Summary List cocktails by first letter
// @Tags Cocktails
// @Produce json
// @Param letter path string true "Single letter"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/cocktails/by-letter/{letter} [get]
func (h *CocktailHandler) ByLetter(c *gin.Context) {
	data, err := h.service.ByLetter(c.Request.Context(), c.Param("letter"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}
