package dto

// LoginRequest carries credentials for both /login and /register.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by successful login and refresh calls. Expiry is
// the access token lifetime in seconds.
type TokenResponse struct {
	Token   string  `json:"token"`
	Expiry  float64 `json:"expiry"`
	Refresh string  `json:"refresh"`
}

// RegisterResponse echoes the new account's username and assigned role.
type RegisterResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MessageResponse is the generic message/error body used across the API.
type MessageResponse struct {
	Message string `json:"message"`
}
