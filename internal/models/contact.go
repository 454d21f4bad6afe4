package models

// Contact is a directory entry, distinct from a User account. An account may
// be linked to at most one contact.
type Contact struct {
	ContactID string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Extension string `json:"extension"`
}

// Favorite marks a contact as a favorite of a user.
type Favorite struct {
	FavoriteID string `json:"id"`
	UserID     string `json:"userId"`
	ContactID  string `json:"contactId"`
}
