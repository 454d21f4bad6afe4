package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// groupHandler handles contact group endpoints.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

// registerGroupRoutes registers group routes for authenticated callers.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/groups")
	{
		groups.GET("", h.listGroups)
		groups.GET("/:id", h.getGroupDetails)
		groups.POST("", h.createGroup)
		groups.PUT("/:id", h.updateGroup)
		groups.DELETE("/:id", h.deleteGroup)
		groups.POST("/:id/members/:contact", h.addMember)
		groups.DELETE("/:id/members/:contact", h.removeMember)
	}
}

// listGroups godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.Group
// @Success 204 "No groups exist"
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list groups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list groups"})
		return
	}
	if len(groups) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// getGroupDetails godoc
// @Summary Get a group with its members
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.GroupDetailsResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *groupHandler) getGroupDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	details, err := h.groupService.GetGroupDetails(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Group not found"})
			return
		}
		logger.Error("Failed to fetch group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch group"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// createGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.GroupRequest true "Group fields"
// @Success 200 {object} models.Group
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Group name is missing"})
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create group", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to create group"})
		return
	}

	logger.Info("Group created", slog.String("group_id", group.GroupID))
	c.JSON(http.StatusOK, group)
}

// updateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body dto.GroupRequest true "Group fields"
// @Success 200 {object} models.Group
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Group name is missing"})
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), groupID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Group not found"})
			return
		}
		logger.Error("Failed to update group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to update group"})
		return
	}

	c.JSON(http.StatusOK, group)
}

// deleteGroup godoc
// @Summary Delete a group
// @Description Removes the group and its memberships. Member contacts are untouched.
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} models.Group
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	group, err := h.groupService.DeleteGroup(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Group not found"})
			return
		}
		logger.Error("Failed to delete group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to delete group"})
		return
	}

	logger.Info("Group deleted", slog.String("group_id", groupID))
	c.JSON(http.StatusOK, group)
}

// addMember godoc
// @Summary Add a contact to a group
// @Description The contact may be referenced by id, email or extension. Adding an existing member is not an error.
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Param contact path string true "Contact id, email or extension"
// @Success 200 {object} models.Contact
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups/{id}/members/{contact} [post]
func (h *groupHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")
	contactKey := c.Param("contact")

	contact, err := h.groupService.AddMember(c.Request.Context(), groupID, contactKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Group or contact not found"})
			return
		}
		logger.Error("Failed to add group member", slog.String("error", err.Error()), slog.String("group_id", groupID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to add group member"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// removeMember godoc
// @Summary Remove a contact from a group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Param contact path string true "Contact ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /groups/{id}/members/{contact} [delete]
func (h *groupHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")
	contactID := c.Param("contact")

	if _, err := h.groupService.RemoveMember(c.Request.Context(), groupID, contactID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Membership not found"})
			return
		}
		logger.Error("Failed to remove group member", slog.String("error", err.Error()), slog.String("group_id", groupID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to remove group member"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed"})
}
