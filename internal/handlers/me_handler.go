package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/dto"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Not authenticated.")
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "Not authenticated.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserDTO(&user)})
}
