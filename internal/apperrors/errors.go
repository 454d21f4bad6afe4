package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so the response cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken indicates a refresh token unknown to the store, including
// tokens already consumed by a previous rotation.
var ErrInvalidToken = errors.New("invalid refresh token")

// ErrExpiredToken indicates a refresh token whose expiry has passed.
var ErrExpiredToken = errors.New("expired refresh token")
