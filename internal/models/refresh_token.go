package models

import "time"

// RefreshToken is one rotating refresh token record. Token is an opaque
// random value; each successful rotation replaces it, so a given value is
// single-use. Revoked is kept in the schema for deployments that prefer to
// retain revocation history; the default flow hard-deletes rows instead.
type RefreshToken struct {
	TokenID string    `json:"id"`
	Token   string    `json:"token"`
	UserID  string    `json:"userId"`
	Expiry  time.Time `json:"expiry"`
	Revoked bool      `json:"revoked"`
}
