package services

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
)

// ContactSvcFacade exposes directory browsing, contact CRUD and favorites.
type ContactSvcFacade interface {
	// ListContacts returns the directory, excluding the caller's own linked
	// contact when they have one.
	ListContacts(ctx context.Context, callerUserID string) ([]models.Contact, error)
	CreateContact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error)
	UpdateContact(ctx context.Context, contactID string, req dto.ContactRequest) (*models.Contact, error)
	DeleteContact(ctx context.Context, contactID string) (*models.Contact, error)
	// GetOwnContact returns the caller's linked contact profile.
	GetOwnContact(ctx context.Context, userID string) (*models.Contact, error)

	ListFavorites(ctx context.Context, userID string) ([]models.Contact, error)
	AddFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error)
	// RemoveFavorite is idempotent: removing a non-favorite is not an error.
	RemoveFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error)
}
