package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/google/uuid"
)

type contactService struct {
	repos portsrepo.Repositories
	txm   portsrepo.TxManager
}

// NewContactService creates the directory browsing and favorites service.
func NewContactService(repos portsrepo.Repositories, txm portsrepo.TxManager) portssvc.ContactSvcFacade {
	return &contactService{repos: repos, txm: txm}
}

func (s *contactService) ListContacts(ctx context.Context, callerUserID string) ([]models.Contact, error) {
	contacts, err := s.repos.Contact.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	caller, err := s.repos.User.FindUserByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return contacts, nil
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	if caller.ContactID == nil {
		return contacts, nil
	}

	// Hide the caller's own directory entry.
	filtered := contacts[:0]
	for _, contact := range contacts {
		if contact.ContactID != *caller.ContactID {
			filtered = append(filtered, contact)
		}
	}
	return filtered, nil
}

func (s *contactService) CreateContact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	contact := models.Contact{
		ContactID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Extension: req.Extension,
	}
	if err := s.repos.Contact.SaveContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, contactID string, req dto.ContactRequest) (*models.Contact, error) {
	contact, err := s.repos.Contact.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = req.Name
	contact.Email = req.Email
	contact.Extension = req.Extension
	if err := s.repos.Contact.UpdateContact(ctx, *contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, contactID string) (*models.Contact, error) {
	contact, err := s.repos.Contact.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	// Memberships, favorites and account links reference the contact; they
	// are removed in the same transaction as the contact itself.
	err = s.txm.WithinTx(ctx, func(repos portsrepo.Repositories) error {
		if err := repos.Group.RemoveMembershipsByContact(ctx, contactID); err != nil {
			return err
		}
		if err := repos.Favorite.DeleteFavoritesByContact(ctx, contactID); err != nil {
			return err
		}
		if err := repos.User.ClearContactLink(ctx, contactID); err != nil {
			return err
		}
		return repos.Contact.DeleteContact(ctx, contactID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) GetOwnContact(ctx context.Context, userID string) (*models.Contact, error) {
	user, err := s.repos.User.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ContactID == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.repos.Contact.FindContactByID(ctx, *user.ContactID)
}

func (s *contactService) ListFavorites(ctx context.Context, userID string) ([]models.Contact, error) {
	contacts, err := s.repos.Favorite.ListFavoriteContacts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return contacts, nil
}

func (s *contactService) AddFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error) {
	if _, err := s.repos.Contact.FindContactByID(ctx, contactID); err != nil {
		return nil, err
	}

	favorite := models.Favorite{
		FavoriteID: uuid.NewString(),
		UserID:     userID,
		ContactID:  contactID,
	}
	if err := s.repos.Favorite.SaveFavorite(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}
	return &favorite, nil
}

func (s *contactService) RemoveFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error) {
	if _, err := s.repos.Contact.FindContactByID(ctx, contactID); err != nil {
		return nil, err
	}

	favorite, err := s.repos.Favorite.FindFavorite(ctx, userID, contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Removing a contact that was never favorited is a no-op.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up favorite: %w", err)
	}

	if err := s.repos.Favorite.DeleteFavorite(ctx, userID, contactID); err != nil {
		return nil, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return favorite, nil
}
