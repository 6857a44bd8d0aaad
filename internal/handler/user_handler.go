package handler

import (
	"net/http"

	"github.com/rahibvk/buyandsellmarketplace/internal/middleware"
	"github.com/rahibvk/buyandsellmarketplace/internal/service"
	"github.com/rahibvk/buyandsellmarketplace/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type UpdateProfileRequest struct {
	City   *string `json:"city" binding:"omitempty,max=100"`
	Region *string `json:"region" binding:"omitempty,max=100"`
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	utils.SuccessResponse(c, service.NewUserResponse(user))
}

// UpdateMe updates the authenticated user's city/region
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(user, req.City, req.Region)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, service.NewUserResponse(updated))
}
