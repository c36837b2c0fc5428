// Package admin applies role changes on behalf of an authenticated admin.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ffloras/comp2537-assignment2/internal/model"
)

var (
	// ErrInvalidRole rejects any role outside the closed {user, admin} set.
	ErrInvalidRole = errors.New("admin: role must be user or admin")
	// ErrInvalidTarget rejects a target id that is not a valid user id.
	ErrInvalidTarget = errors.New("admin: invalid target user id")
)

// UserStore is the credential-store surface the admin service needs.
type UserStore interface {
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	FindAll(ctx context.Context) ([]model.UserListing, error)
}

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// SetUserRole applies a role change when both a target id and a new role are
// supplied, then re-reads the full user listing. The listing is returned
// even when no mutation was requested, and also alongside ErrInvalidRole or
// ErrInvalidTarget when the mutation itself was rejected. A store failure
// returns a nil listing.
func (s *Service) SetUserRole(ctx context.Context, targetID, newRole string) ([]model.UserListing, error) {
	var mutErr error

	if targetID != "" && newRole != "" {
		if !model.ValidRole(newRole) {
			mutErr = ErrInvalidRole
		} else if id, err := uuid.Parse(targetID); err != nil {
			mutErr = ErrInvalidTarget
		} else if err := s.users.UpdateRole(ctx, id, newRole); err != nil {
			return nil, fmt.Errorf("admin: update role: %w", err)
		}
	}

	listing, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: list users: %w", err)
	}
	if listing == nil {
		listing = []model.UserListing{}
	}
	return listing, mutErr
}
