package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/middleware"
	"github.com/noah-isme/curriculum-api/internal/models"
	"github.com/noah-isme/curriculum-api/internal/service"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate user by user_id and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Me godoc
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := userFromContext(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Logout godoc
// @Summary Logout current session
// @Description Revoke the presented bearer token. A token that was already
// revoked is a bad request, not an authentication failure.
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Logout takes the raw bearer token, not an authenticated user: running
	// it behind the denylist check would turn the second logout into a 401
	// before the 400 "already revoked" answer could be produced.
	token, err := middleware.ExtractBearer(c.GetHeader("Authorization"))
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Register godoc
// @Summary Register user
// @Description Create a user account (department head only)
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.RegisterRequest true "Register payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, user)
}
