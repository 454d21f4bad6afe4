package models

// Role values assigned at registration. The very first account ever created
// becomes an Admin; everyone after that is a User.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is an application account. Username is an email address and is unique.
// ContactID links the account to its directory entry; it is populated lazily
// on first successful login.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Salt         string  `json:"-"`
	Role         string  `json:"role"`
	ContactID    *string `json:"contactID,omitempty"`
}

// RoleOrDefault returns the stored role, defaulting to User when unset.
func (u User) RoleOrDefault() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
