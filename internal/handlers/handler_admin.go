package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/middleware"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin-only account management endpoints.
type adminHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{userService: us}
}

// registerAdminRoutes registers the /admin routes, gated on the Admin role.
func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAdminHandler(userService)

	admin := rg.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", h.listUsers)
		admin.POST("/reset-password/:id", h.resetPassword)
		admin.DELETE("/users/:id", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List accounts
// @Description Lists every account except the caller's, with linked contacts.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminUserResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /admin [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), callerID)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// resetPassword godoc
// @Summary Reset an account's password
// @Description Overwrites the account's credential with a temporary password, returned once in the response.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /admin/reset-password/{id} [post]
func (h *adminHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	password, err := h.userService.ResetPassword(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to reset password", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to reset password"})
		return
	}

	logger.Info("Password reset", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Password updated successfully: %s", password)})
}

// deleteUser godoc
// @Summary Delete an account
// @Description Removes the account along with its contact, favorites, group memberships and refresh tokens.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *adminHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to delete user"})
		return
	}

	logger.Info("User deleted", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
