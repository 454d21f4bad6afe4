package repositories

import (
	"context"
	"time"

	"github.com/contactsapp/contacts-backend/internal/models"
)

// RefreshTokenRepository persists rotating refresh tokens.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error
	// FindByToken looks a record up by its opaque token value. Returns
	// apperrors.ErrNotFound when no record holds that value.
	FindByToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error)
	// RotateToken atomically replaces oldValue with newValue and extends the
	// expiry. It reports whether a row was actually swapped: a false result
	// means the pre-image was consumed by a concurrent rotation (or never
	// existed), so the caller must treat the token as invalid.
	RotateToken(ctx context.Context, oldValue, newValue string, newExpiry time.Time) (bool, error)
	// DeleteByToken removes a single record by token value.
	DeleteByToken(ctx context.Context, tokenValue string) error
	// DeleteByUserID removes every refresh token owned by the user.
	DeleteByUserID(ctx context.Context, userID string) error
}
