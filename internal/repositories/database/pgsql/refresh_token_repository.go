package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxRefreshTokenRepository struct {
	db Querier
}

func NewRefreshTokenRepository(db Querier) *PgxRefreshTokenRepository {
	return &PgxRefreshTokenRepository{db: db}
}

// Ensure PgxRefreshTokenRepository implements portsrepo.RefreshTokenRepository
var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (token_id, token, user_id, expiry, revoked)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query, token.TokenID, token.Token, token.UserID, token.Expiry, token.Revoked)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindByToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error) {
	query := `
        SELECT token_id, token, user_id, expiry, revoked
        FROM refresh_tokens
        WHERE token = $1;
    `
	var token models.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenValue).Scan(
		&token.TokenID,
		&token.Token,
		&token.UserID,
		&token.Expiry,
		&token.Revoked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan refresh token row: %w", err)
	}
	return &token, nil
}

// RotateToken swaps the stored value in a single UPDATE keyed on the old
// value. Two concurrent rotations with the same pre-image race on that WHERE
// clause; exactly one sees a row affected, the other gets false.
func (r *PgxRefreshTokenRepository) RotateToken(ctx context.Context, oldValue, newValue string, newExpiry time.Time) (bool, error) {
	query := `
        UPDATE refresh_tokens
        SET token = $1, expiry = $2
        WHERE token = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, newValue, newExpiry, oldValue)
	if err != nil {
		return false, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxRefreshTokenRepository) DeleteByToken(ctx context.Context, tokenValue string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1;`, tokenValue); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user: %w", err)
	}
	return nil
}
