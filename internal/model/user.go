package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the closed set of roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User is a stored user record. IDs are assigned by the store.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized out of the store boundary
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserListing is the projection handed to the admin view.
type UserListing struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}
