package services

import "errors"

// Sentinel errors surfaced by the services. Controllers translate these into
// response statuses; anything else is treated as an internal store error.
var (
	ErrDuplicateUsername = errors.New("username already exist")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("wrong credentials")

	ErrUserNotFound     = errors.New("user not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrActivityNotFound = errors.New("activity not found")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)
