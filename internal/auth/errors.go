package auth

import "errors"

// Sentinel failures returned by Session operations. The messages are
// user-facing; match with errors.Is.
var (
	ErrNoAccount          = errors.New("No account found with this email")
	ErrIncorrectPassword  = errors.New("Incorrect password")
	ErrAccountExists      = errors.New("An account with this email already exists")
	ErrLoginFailed        = errors.New("An error occurred during login")
	ErrRegistrationFailed = errors.New("An error occurred during registration")
)
