package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxFavoriteRepository struct {
	db Querier
}

func NewFavoriteRepository(db Querier) *PgxFavoriteRepository {
	return &PgxFavoriteRepository{db: db}
}

// Ensure PgxFavoriteRepository implements portsrepo.FavoriteRepository
var _ portsrepo.FavoriteRepository = (*PgxFavoriteRepository)(nil)

func (r *PgxFavoriteRepository) SaveFavorite(ctx context.Context, favorite models.Favorite) error {
	query := `
        INSERT INTO favorites (favorite_id, user_id, contact_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, contact_id) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, favorite.FavoriteID, favorite.UserID, favorite.ContactID)
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

func (r *PgxFavoriteRepository) ListFavoriteContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	query := `
        SELECT c.contact_id, c.name, c.email, c.extension
        FROM favorites f
        JOIN contacts c ON c.contact_id = f.contact_id
        WHERE f.user_id = $1
        ORDER BY c.name;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *PgxFavoriteRepository) FindFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error) {
	query := `
        SELECT favorite_id, user_id, contact_id
        FROM favorites
        WHERE user_id = $1 AND contact_id = $2;
    `
	var favorite models.Favorite
	err := r.db.QueryRow(ctx, query, userID, contactID).Scan(&favorite.FavoriteID, &favorite.UserID, &favorite.ContactID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan favorite row: %w", err)
	}
	return &favorite, nil
}

func (r *PgxFavoriteRepository) DeleteFavorite(ctx context.Context, userID, contactID string) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND contact_id = $2;`
	if _, err := r.db.Exec(ctx, query, userID, contactID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

func (r *PgxFavoriteRepository) DeleteFavoritesByContact(ctx context.Context, contactID string) error {
	query := `DELETE FROM favorites WHERE contact_id = $1;`
	if _, err := r.db.Exec(ctx, query, contactID); err != nil {
		return fmt.Errorf("failed to delete favorites for contact: %w", err)
	}
	return nil
}
