package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/middleware"
	"github.com/noah-isme/curriculum-api/internal/models"
)

func userFromContext(c *gin.Context) *models.User {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return nil
	}
	return user
}
