package dto

// ContactRequest carries the writable fields of a contact for create and
// update calls. Extension uses the custom validation registered at startup.
type ContactRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Extension string `json:"extension" binding:"required,extension"`
}
