package services

import (
	"context"
	"fmt"

	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/google/uuid"
)

type groupService struct {
	repos portsrepo.Repositories
	txm   portsrepo.TxManager
}

// NewGroupService creates the contact group service.
func NewGroupService(repos portsrepo.Repositories, txm portsrepo.TxManager) portssvc.GroupSvcFacade {
	return &groupService{repos: repos, txm: txm}
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.repos.Group.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) CreateGroup(ctx context.Context, req dto.GroupRequest) (*models.Group, error) {
	group := models.Group{
		GroupID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repos.Group.SaveGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return &group, nil
}

func (s *groupService) GetGroupDetails(ctx context.Context, groupID string) (*dto.GroupDetailsResponse, error) {
	group, err := s.repos.Group.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.repos.Group.ListMemberContacts(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}

	description := ""
	if group.Description != nil {
		description = *group.Description
	}
	return &dto.GroupDetailsResponse{
		GroupID:     group.GroupID,
		Name:        group.Name,
		Description: description,
		Members:     members,
	}, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID string, req dto.GroupRequest) (*models.Group, error) {
	group, err := s.repos.Group.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description
	if err := s.repos.Group.UpdateGroup(ctx, *group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.repos.Group.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	err = s.txm.WithinTx(ctx, func(repos portsrepo.Repositories) error {
		if err := repos.Group.RemoveMembersByGroup(ctx, groupID); err != nil {
			return err
		}
		return repos.Group.DeleteGroup(ctx, groupID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}
	return group, nil
}

func (s *groupService) AddMember(ctx context.Context, groupID, contactKey string) (*models.Contact, error) {
	if _, err := s.repos.Group.FindGroupByID(ctx, groupID); err != nil {
		return nil, err
	}

	contact, err := s.repos.Contact.FindContactByKey(ctx, contactKey)
	if err != nil {
		return nil, err
	}

	member := models.GroupMember{GroupID: groupID, ContactID: contact.ContactID}
	if err := s.repos.Group.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add group member: %w", err)
	}
	return contact, nil
}

func (s *groupService) RemoveMember(ctx context.Context, groupID, contactID string) (*models.GroupMember, error) {
	member, err := s.repos.Group.FindMember(ctx, groupID, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Group.RemoveMember(ctx, groupID, contactID); err != nil {
		return nil, fmt.Errorf("failed to remove group member: %w", err)
	}
	return member, nil
}
