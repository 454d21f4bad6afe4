package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/utils"
)

type userService struct {
	repos portsrepo.Repositories
	txm   portsrepo.TxManager
}

// NewUserService creates the admin-facing account management service.
func NewUserService(repos portsrepo.Repositories, txm portsrepo.TxManager) portssvc.UserSvcFacade {
	return &userService{repos: repos, txm: txm}
}

func (s *userService) ListUsers(ctx context.Context, excludingUserID string) ([]dto.AdminUserResponse, error) {
	users, err := s.repos.User.FindUsersExcluding(ctx, excludingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		resp := dto.ToAdminUserResponse(user, nil)
		if user.ContactID != nil {
			contact, err := s.repos.Contact.FindContactByID(ctx, *user.ContactID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to load contact for user %s: %w", user.UserID, err)
			}
			resp.Contact = contact
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *userService) ResetPassword(ctx context.Context, userID string) (string, error) {
	if _, err := s.repos.User.FindUserByID(ctx, userID); err != nil {
		return "", err
	}

	password, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate temporary password: %w", err)
	}
	salt, err := utils.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	passwordHash, err := utils.HashPassword(password, salt)
	if err != nil {
		return "", fmt.Errorf("failed to hash temporary password: %w", err)
	}

	if err := s.repos.User.UpdateCredentials(ctx, userID, passwordHash, salt); err != nil {
		return "", fmt.Errorf("failed to store new credentials: %w", err)
	}

	// The plaintext is returned exactly once for out-of-band delivery; only
	// the salted hash survives.
	return password, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	// Dependent rows go first: memberships and favorites reference the
	// contact, the contact is referenced by the user row, and refresh tokens
	// reference the user. One transaction so a failure leaves nothing
	// half-deleted.
	return s.txm.WithinTx(ctx, func(repos portsrepo.Repositories) error {
		user, err := repos.User.FindUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if user.ContactID != nil {
			contactID := *user.ContactID
			if err := repos.Group.RemoveMembershipsByContact(ctx, contactID); err != nil {
				return err
			}
			if err := repos.Favorite.DeleteFavoritesByContact(ctx, contactID); err != nil {
				return err
			}
			if err := repos.User.SetContactID(ctx, userID, nil); err != nil {
				return err
			}
			if err := repos.Contact.DeleteContact(ctx, contactID); err != nil {
				return err
			}
		}

		if err := repos.RefreshToken.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return repos.User.DeleteUser(ctx, userID)
	})
}
