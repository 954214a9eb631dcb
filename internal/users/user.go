// Package users manages the registered-user list and the current-session
// pointer on top of the key-value store.
package users

// User is a registered account. Email is the identity; lookups compare it
// case-insensitively. The password is stored as entered, with no hashing
// (a known gap inherited from the original app).
type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
