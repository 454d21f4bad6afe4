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

type PgxGroupRepository struct {
	db Querier
}

func NewGroupRepository(db Querier) *PgxGroupRepository {
	return &PgxGroupRepository{db: db}
}

// Ensure PgxGroupRepository implements portsrepo.GroupRepository
var _ portsrepo.GroupRepository = (*PgxGroupRepository)(nil)

func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group models.Group) error {
	query := `
        INSERT INTO groups (group_id, name, description)
        VALUES ($1, $2, $3);
    `
	if _, err := r.db.Exec(ctx, query, group.GroupID, group.Name, group.Description); err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}
	return nil
}

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*models.Group, error) {
	query := `
        SELECT group_id, name, description
        FROM groups
        WHERE group_id = $1;
    `
	var group models.Group
	err := r.db.QueryRow(ctx, query, groupID).Scan(&group.GroupID, &group.Name, &group.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan group row: %w", err)
	}
	return &group, nil
}

func (r *PgxGroupRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	query := `
        SELECT group_id, name, description
        FROM groups
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.GroupID, &group.Name, &group.Description); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, group)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", rows.Err())
	}
	return groups, nil
}

func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group models.Group) error {
	query := `
        UPDATE groups
        SET name = $1, description = $2
        WHERE group_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, group.Name, group.Description, group.GroupID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGroupRepository) AddMember(ctx context.Context, member models.GroupMember) error {
	query := `
        INSERT INTO group_members (group_id, contact_id)
        VALUES ($1, $2)
        ON CONFLICT (group_id, contact_id) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, member.GroupID, member.ContactID); err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

func (r *PgxGroupRepository) FindMember(ctx context.Context, groupID, contactID string) (*models.GroupMember, error) {
	query := `
        SELECT group_id, contact_id
        FROM group_members
        WHERE group_id = $1 AND contact_id = $2;
    `
	var member models.GroupMember
	err := r.db.QueryRow(ctx, query, groupID, contactID).Scan(&member.GroupID, &member.ContactID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan group member row: %w", err)
	}
	return &member, nil
}

func (r *PgxGroupRepository) ListMemberContacts(ctx context.Context, groupID string) ([]models.Contact, error) {
	query := `
        SELECT c.contact_id, c.name, c.email, c.extension
        FROM group_members gm
        JOIN contacts c ON c.contact_id = gm.contact_id
        WHERE gm.group_id = $1
        ORDER BY c.name;
    `
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group members: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *PgxGroupRepository) RemoveMember(ctx context.Context, groupID, contactID string) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND contact_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, groupID, contactID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGroupRepository) RemoveMembersByGroup(ctx context.Context, groupID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM group_members WHERE group_id = $1;`, groupID); err != nil {
		return fmt.Errorf("failed to clear group membership: %w", err)
	}
	return nil
}

func (r *PgxGroupRepository) RemoveMembershipsByContact(ctx context.Context, contactID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM group_members WHERE contact_id = $1;`, contactID); err != nil {
		return fmt.Errorf("failed to remove contact memberships: %w", err)
	}
	return nil
}
