package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrUnauthenticated = errors.New("not authenticated")
var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrSelfDeletion = errors.New("cannot delete own account")

// User models an account in the system: either an administrator or a
// client assigned to construction objects.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleClient
}

// ValidStatus reports whether s is a known account status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
