package repositories

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/models"
)

// UserRepository persists application accounts.
type UserRepository interface {
	// SaveUser inserts a new account. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user models.User) error
	// FindUserByID returns apperrors.ErrNotFound when no such account exists.
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	// FindUserByUsername returns apperrors.ErrNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	// CountUsers returns the total number of accounts. Used to decide whether
	// a registration is the first one ever (which becomes Admin).
	CountUsers(ctx context.Context) (int64, error)
	// FindUsersExcluding lists every account except the given one.
	FindUsersExcluding(ctx context.Context, userID string) ([]models.User, error)
	// UpdateCredentials overwrites the stored password hash and salt.
	UpdateCredentials(ctx context.Context, userID, passwordHash, salt string) error
	// SetContactID links the account to a contact profile.
	SetContactID(ctx context.Context, userID string, contactID *string) error
	// ClearContactLink detaches every account linked to the given contact.
	ClearContactLink(ctx context.Context, contactID string) error
	// DeleteUser removes the account row. Dependent rows must already be gone.
	DeleteUser(ctx context.Context, userID string) error
}
