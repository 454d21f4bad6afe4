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

type PgxContactRepository struct {
	db Querier
}

func NewContactRepository(db Querier) *PgxContactRepository {
	return &PgxContactRepository{db: db}
}

// Ensure PgxContactRepository implements portsrepo.ContactRepository
var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact models.Contact) error {
	query := `
        INSERT INTO contacts (contact_id, name, email, extension)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, contact.ContactID, contact.Name, contact.Email, contact.Extension)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*models.Contact, error) {
	query := `
        SELECT contact_id, name, email, extension
        FROM contacts
        WHERE contact_id = $1;
    `
	return scanContact(r.db.QueryRow(ctx, query, contactID))
}

func (r *PgxContactRepository) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	query := `
        SELECT contact_id, name, email, extension
        FROM contacts
        WHERE email = $1;
    `
	return scanContact(r.db.QueryRow(ctx, query, email))
}

func (r *PgxContactRepository) FindContactByKey(ctx context.Context, key string) (*models.Contact, error) {
	query := `
        SELECT contact_id, name, email, extension
        FROM contacts
        WHERE contact_id = $1 OR email = $1 OR extension = $1
        LIMIT 1;
    `
	return scanContact(r.db.QueryRow(ctx, query, key))
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ContactID, &contact.Name, &contact.Email, &contact.Extension)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contact row: %w", err)
	}
	return &contact, nil
}

func (r *PgxContactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	query := `
        SELECT contact_id, name, email, extension
        FROM contacts
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func collectContacts(rows pgx.Rows) ([]models.Contact, error) {
	contacts := []models.Contact{}
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ContactID, &contact.Name, &contact.Email, &contact.Extension); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", rows.Err())
	}
	return contacts, nil
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact models.Contact) error {
	query := `
        UPDATE contacts
        SET name = $1, email = $2, extension = $3
        WHERE contact_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, contact.Name, contact.Email, contact.Extension, contact.ContactID)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE contact_id = $1;`, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
