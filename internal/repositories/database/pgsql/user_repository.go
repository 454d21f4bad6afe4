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

type PgxUserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user models.User) error {
	query := `
        INSERT INTO users (user_id, username, password_hash, salt, role, contact_id)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.Salt,
		user.Role,
		user.ContactID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %q taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
        SELECT user_id, username, password_hash, salt, role, contact_id
        FROM users
        WHERE user_id = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
        SELECT user_id, username, password_hash, salt, role, contact_id
        FROM users
        WHERE username = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Salt,
		&user.Role,
		&user.ContactID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) FindUsersExcluding(ctx context.Context, userID string) ([]models.User, error) {
	query := `
        SELECT user_id, username, password_hash, salt, role, contact_id
        FROM users
        WHERE user_id <> $1
        ORDER BY username;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.PasswordHash,
			&user.Salt,
			&user.Role,
			&user.ContactID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateCredentials(ctx context.Context, userID, passwordHash, salt string) error {
	query := `
        UPDATE users
        SET password_hash = $1, salt = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, salt, userID)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) SetContactID(ctx context.Context, userID string, contactID *string) error {
	query := `
        UPDATE users
        SET contact_id = $1
        WHERE user_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, contactID, userID)
	if err != nil {
		return fmt.Errorf("failed to set contact link: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearContactLink(ctx context.Context, contactID string) error {
	query := `
        UPDATE users
        SET contact_id = NULL
        WHERE contact_id = $1;
    `
	if _, err := r.db.Exec(ctx, query, contactID); err != nil {
		return fmt.Errorf("failed to clear contact link: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
