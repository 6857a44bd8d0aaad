package handler

import (
	"errors"
	"net/http"

	"github.com/rahibvk/buyandsellmarketplace/internal/middleware"
	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/service"
	"github.com/rahibvk/buyandsellmarketplace/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationService *service.ModerationService
}

func NewAdminHandler(moderationService *service.ModerationService) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
	}
}

type ModerationRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// BanUser bans a user and revokes all of their sessions
func (h *AdminHandler) BanUser(c *gin.Context) {
	h.moderate(c, h.moderationService.BanUser, "User banned")
}

// UnbanUser lifts a user's ban
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.moderate(c, h.moderationService.UnbanUser, "User unbanned")
}

func (h *AdminHandler) moderate(c *gin.Context, action func(admin *models.User, userID, reason string) error, message string) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	// The reason body is optional
	var req ModerationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := action(admin, c.Param("id"), req.Reason); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Moderation action failed")
		return
	}

	utils.MessageResponse(c, message)
}
