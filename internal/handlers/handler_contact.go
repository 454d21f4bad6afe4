package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/middleware"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// contactHandler handles directory, contact CRUD and favorites endpoints.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers contact and favorites routes. Anyone
// authenticated can read the directory and add entries; updating and deleting
// entries is admin only.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	rg.GET("/me", h.getOwnContact)

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.POST("", h.createContact)
		contacts.GET("/favorites", h.listFavorites)
		contacts.POST("/favorites/:id", h.addFavorite)
		contacts.DELETE("/favorites/:id", h.removeFavorite)

		adminOnly := contacts.Group("", middleware.RequireRole(models.RoleAdmin))
		adminOnly.PUT("/:id", h.updateContact)
		adminOnly.DELETE("/:id", h.deleteContact)
	}
}

// listContacts godoc
// @Summary List the directory
// @Description Lists every contact except the caller's own linked profile.
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), callerID)
	if err != nil {
		logger.Error("Failed to list contacts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// getOwnContact godoc
// @Summary Get own contact profile
// @Description Returns the contact profile linked to the caller's account.
// @Tags contacts
// @Produce json
// @Success 200 {object} models.Contact
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /me [get]
func (h *contactHandler) getOwnContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	contact, err := h.contactService.GetOwnContact(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No contact profile linked"})
			return
		}
		logger.Error("Failed to fetch own contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch contact"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// createContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body dto.ContactRequest true "Contact fields"
// @Success 200 {object} models.Contact
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid contact payload"})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Contact already exists"})
			return
		}
		logger.Error("Failed to create contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to create contact"})
		return
	}

	logger.Info("Contact created", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusOK, contact)
}

// updateContact godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body dto.ContactRequest true "Contact fields"
// @Success 200 {object} models.Contact
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("id")

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid contact payload"})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), contactID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Contact not found"})
			return
		}
		logger.Error("Failed to update contact", slog.String("error", err.Error()), slog.String("contact_id", contactID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// deleteContact godoc
// @Summary Delete a contact
// @Description Removes the contact along with its memberships and favorite marks, detaching any linked account.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *contactHandler) deleteContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("id")

	contact, err := h.contactService.DeleteContact(c.Request.Context(), contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Contact not found"})
			return
		}
		logger.Error("Failed to delete contact", slog.String("error", err.Error()), slog.String("contact_id", contactID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to delete contact"})
		return
	}

	logger.Info("Contact deleted", slog.String("contact_id", contactID))
	c.JSON(http.StatusOK, contact)
}

// listFavorites godoc
// @Summary List favorite contacts
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts/favorites [get]
func (h *contactHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	favorites, err := h.contactService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list favorites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// addFavorite godoc
// @Summary Mark a contact as favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Favorite
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts/favorites/{id} [post]
func (h *contactHandler) addFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	favorite, err := h.contactService.AddFavorite(c.Request.Context(), userID, contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Contact not found"})
			return
		}
		logger.Error("Failed to add favorite", slog.String("error", err.Error()), slog.String("contact_id", contactID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// removeFavorite godoc
// @Summary Unmark a favorite contact
// @Description Removes the favorite mark. Unmarking a contact that was never marked is not an error.
// @Tags favorites
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /contacts/favorites/{id} [delete]
func (h *contactHandler) removeFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	if _, err := h.contactService.RemoveFavorite(c.Request.Context(), userID, contactID); err != nil {
		logger.Error("Failed to remove favorite", slog.String("error", err.Error()), slog.String("contact_id", contactID))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Favorite removed"})
}
