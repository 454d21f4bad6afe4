package dto

import "github.com/contactsapp/contacts-backend/internal/models"

// AdminUserResponse is the admin-facing view of an account, with the linked
// contact expanded when present. Credential material is never included.
type AdminUserResponse struct {
	UserID   string          `json:"id"`
	Username string          `json:"username"`
	Role     string          `json:"role"`
	Contact  *models.Contact `json:"contact,omitempty"`
}

// ToAdminUserResponse converts an account and its optional contact.
func ToAdminUserResponse(user models.User, contact *models.Contact) AdminUserResponse {
	return AdminUserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.RoleOrDefault(),
		Contact:  contact,
	}
}
