package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is a member of the role enum.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("name, email, and password are required")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// User models a registered account. PasswordHash is never serialized to JSON
// and is only loaded from storage when explicitly requested for verification.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
