package dto

import "github.com/contactsapp/contacts-backend/internal/models"

// GroupRequest carries the writable fields of a group.
type GroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// GroupDetailsResponse is a group expanded with its member contacts.
type GroupDetailsResponse struct {
	GroupID     string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Members     []models.Contact `json:"members"`
}
