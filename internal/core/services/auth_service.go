package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/contactsapp/contacts-backend/internal/platform/config"
	"github.com/contactsapp/contacts-backend/internal/utils"
	"github.com/google/uuid"
)

// placeholderExtension fills the extension of a contact created lazily at
// first login, before anyone has assigned a real one.
const placeholderExtension = "---"

type authService struct {
	cfg   *config.Config
	repos portsrepo.Repositories
	txm   portsrepo.TxManager
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, repos portsrepo.Repositories, txm portsrepo.TxManager) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, repos: repos, txm: txm}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("username or password is missing: %w", apperrors.ErrValidation)
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	passwordHash, err := utils.HashPassword(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	// The count check and the insert share one transaction so two concurrent
	// first registrations cannot both become Admin.
	err = s.txm.WithinTx(ctx, func(repos portsrepo.Repositories) error {
		count, err := repos.User.CountUsers(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		} else {
			user.Role = models.RoleUser
		}
		return repos.User.SaveUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("user already exists: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("username or password is missing: %w", apperrors.ErrValidation)
	}

	user, err := s.repos.User.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := utils.VerifyPassword(password, user.Salt, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	refreshToken := models.RefreshToken{
		TokenID: uuid.NewString(),
		Token:   uuid.NewString(),
		UserID:  user.UserID,
		Expiry:  time.Now().Add(s.cfg.RefreshExpiry),
	}

	// The refresh token insert and the lazy contact link are one transaction:
	// a login either fully happens or leaves no trace.
	err = s.txm.WithinTx(ctx, func(repos portsrepo.Repositories) error {
		if err := repos.RefreshToken.SaveRefreshToken(ctx, refreshToken); err != nil {
			return err
		}
		if user.ContactID == nil {
			return s.linkContactProfile(ctx, repos, user)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete login: %w", err)
	}

	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:   accessToken,
		Expiry:  s.cfg.JWTExpiry.Seconds(),
		Refresh: refreshToken.Token,
	}, nil
}

// linkContactProfile attaches an existing contact whose email matches the
// username, or creates a fresh one named after the email's local part.
func (s *authService) linkContactProfile(ctx context.Context, repos portsrepo.Repositories, user *models.User) error {
	contact, err := repos.Contact.FindContactByEmail(ctx, user.Username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		contact = &models.Contact{
			ContactID: uuid.NewString(),
			Name:      strings.SplitN(user.Username, "@", 2)[0],
			Email:     user.Username,
			Extension: placeholderExtension,
		}
		if err := repos.Contact.SaveContact(ctx, *contact); err != nil {
			return err
		}
	}
	if err := repos.User.SetContactID(ctx, user.UserID, &contact.ContactID); err != nil {
		return err
	}
	user.ContactID = &contact.ContactID
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.repos.RefreshToken.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.Expiry.Before(time.Now()) {
		if err := s.repos.RefreshToken.DeleteByToken(ctx, refreshToken); err != nil {
			return nil, fmt.Errorf("failed to delete expired refresh token: %w", err)
		}
		return nil, apperrors.ErrExpiredToken
	}

	newValue := uuid.NewString()
	rotated, err := s.repos.RefreshToken.RotateToken(ctx, refreshToken, newValue, time.Now().Add(s.cfg.RefreshExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !rotated {
		// Lost the race against a concurrent rotation of the same pre-image.
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.repos.User.FindUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:   accessToken,
		Expiry:  s.cfg.JWTExpiry.Seconds(),
		Refresh: newValue,
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.repos.RefreshToken.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (s *authService) issueAccessToken(user *models.User) (string, error) {
	token, err := utils.GenerateJWT(
		user.UserID,
		user.Username,
		user.RoleOrDefault(),
		s.cfg.AuthSecretKey,
		s.cfg.JWTIssuer,
		s.cfg.JWTExpiry,
	)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}
