package models

// Group is a named collection of contacts.
type Group struct {
	GroupID     string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// GroupMember relates a contact to a group. The pair is the primary key.
type GroupMember struct {
	GroupID   string `json:"groupId"`
	ContactID string `json:"contactId"`
}
