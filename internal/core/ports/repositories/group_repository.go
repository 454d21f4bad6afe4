package repositories

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/models"
)

// GroupRepository persists contact groups and their memberships.
type GroupRepository interface {
	SaveGroup(ctx context.Context, group models.Group) error
	// FindGroupByID returns apperrors.ErrNotFound when no such group exists.
	FindGroupByID(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	UpdateGroup(ctx context.Context, group models.Group) error
	DeleteGroup(ctx context.Context, groupID string) error

	AddMember(ctx context.Context, member models.GroupMember) error
	// FindMember returns apperrors.ErrNotFound when the membership does not exist.
	FindMember(ctx context.Context, groupID, contactID string) (*models.GroupMember, error)
	// ListMemberContacts returns the contacts that belong to the group.
	ListMemberContacts(ctx context.Context, groupID string) ([]models.Contact, error)
	RemoveMember(ctx context.Context, groupID, contactID string) error
	// RemoveMembersByGroup clears a group's membership before group deletion.
	RemoveMembersByGroup(ctx context.Context, groupID string) error
	// RemoveMembershipsByContact removes the contact from every group.
	RemoveMembershipsByContact(ctx context.Context, contactID string) error
}
