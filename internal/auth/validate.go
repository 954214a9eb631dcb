package auth

import (
	"regexp"
	"strings"
)

// ValidationError is a field-level registration input failure. The message
// is user-facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks that email is present and plausibly shaped.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	return nil
}

// ValidatePassword checks that password is present and at least 6 characters.
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	return nil
}

// ValidateFullName checks that name has at least 2 non-space characters.
func ValidateFullName(name string) error {
	if name == "" {
		return &ValidationError{Field: "fullName", Message: "Full name is required"}
	}
	if len(strings.TrimSpace(name)) < 2 {
		return &ValidationError{Field: "fullName", Message: "Please enter your full name"}
	}
	return nil
}

// ValidateRegistration validates all registration fields and returns the
// first failure, checking full name, then email, then password.
func ValidateRegistration(fullName, email, password string) error {
	if err := ValidateFullName(fullName); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
