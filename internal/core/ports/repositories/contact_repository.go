package repositories

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/models"
)

// ContactRepository persists directory entries.
type ContactRepository interface {
	SaveContact(ctx context.Context, contact models.Contact) error
	// FindContactByID returns apperrors.ErrNotFound when no such contact exists.
	FindContactByID(ctx context.Context, contactID string) (*models.Contact, error)
	// FindContactByEmail returns apperrors.ErrNotFound when no such contact exists.
	FindContactByEmail(ctx context.Context, email string) (*models.Contact, error)
	// FindContactByKey looks a contact up by id, email or extension, in that
	// order of matching. Returns apperrors.ErrNotFound when nothing matches.
	FindContactByKey(ctx context.Context, key string) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) error
	DeleteContact(ctx context.Context, contactID string) error
}

// FavoriteRepository persists per-user contact favorites.
type FavoriteRepository interface {
	SaveFavorite(ctx context.Context, favorite models.Favorite) error
	// ListFavoriteContacts returns the contacts the user has favorited.
	ListFavoriteContacts(ctx context.Context, userID string) ([]models.Contact, error)
	// FindFavorite returns apperrors.ErrNotFound when the pair does not exist.
	FindFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, contactID string) error
	// DeleteFavoritesByContact removes every favorite referencing the contact.
	DeleteFavoritesByContact(ctx context.Context, contactID string) error
}
