package services

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/dto"
)

// UserSvcFacade exposes the admin-only account management operations.
type UserSvcFacade interface {
	// ListUsers returns every account except the caller's, with linked
	// contacts expanded.
	ListUsers(ctx context.Context, excludingUserID string) ([]dto.AdminUserResponse, error)
	// ResetPassword overwrites the account's credential with a freshly salted
	// temporary password and returns the plaintext exactly once.
	ResetPassword(ctx context.Context, userID string) (string, error)
	// DeleteUser removes the account and everything that hangs off it: group
	// memberships and favorites of the linked contact, the contact itself,
	// and all refresh tokens. Runs as a single transaction.
	DeleteUser(ctx context.Context, userID string) error
}
