package services

import (
	"context"

	"github.com/contactsapp/contacts-backend/internal/dto"
	"github.com/contactsapp/contacts-backend/internal/models"
)

// AuthSvcFacade orchestrates registration, login, logout and refresh-token
// rotation.
type AuthSvcFacade interface {
	// Register creates a new account. The first account ever created gets the
	// Admin role; every later one gets User. Returns apperrors.ErrValidation
	// for blank credentials and apperrors.ErrDuplicate for a taken username.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login verifies credentials and issues an access/refresh token pair. An
	// unknown username and a wrong password both fail with
	// apperrors.ErrInvalidCredentials. On first login the account's contact
	// profile is linked or created.
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	// Refresh rotates the given refresh token and mints a fresh access token.
	// The pre-rotation value is single-use: replaying it fails with
	// apperrors.ErrInvalidToken. Past-expiry tokens fail with
	// apperrors.ErrExpiredToken and are deleted.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout revokes every refresh token the user owns. Idempotent.
	Logout(ctx context.Context, userID string) error
}
