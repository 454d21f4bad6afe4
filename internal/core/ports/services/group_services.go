package services

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
)

// GroupSvcFacade exposes group CRUD and membership management.
type GroupSvcFacade interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, req dto.GroupRequest) (*models.Group, error)
	// GetGroupDetails returns the group with its member contacts expanded.
	GetGroupDetails(ctx context.Context, groupID string) (*dto.GroupDetailsResponse, error)
	UpdateGroup(ctx context.Context, groupID string, req dto.GroupRequest) (*models.Group, error)
	// DeleteGroup removes the group and its memberships.
	DeleteGroup(ctx context.Context, groupID string) (*models.Group, error)
	// AddMember resolves the contact by id, email or extension and adds it.
	AddMember(ctx context.Context, groupID, contactKey string) (*models.Contact, error)
	RemoveMember(ctx context.Context, groupID, contactID string) (*models.GroupMember, error)
}
