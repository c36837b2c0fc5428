package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/ffloras/comp2537-assignment2/internal/model"
)

// SessionTTL is how long a freshly issued or touched session lives.
const SessionTTL = time.Hour

// UserStore is the credential-store surface the auth service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) ([]model.User, error)
	InsertOne(ctx context.Context, u *model.User) error
}

// Ticket is the session state issued after a successful signup or login.
// The caller persists it into the session store and sets the cookie.
type Ticket struct {
	UserID    string
	Name      string
	Role      string
	ExpiresAt time.Time
}

type Service struct {
	users UserStore
	now   func() time.Time
}

func NewService(users UserStore) *Service {
	return &Service{
		users: users,
		now:   time.Now,
	}
}

// Signup validates the input, stores a new user with role "user" and issues
// an authenticated ticket. Persistence is a single attempt: a store failure
// is surfaced, not retried, so a client retry after a transient failure may
// create a duplicate-looking account.
func (s *Service) Signup(ctx context.Context, name, email, password string) (Ticket, error) {
	in, err := ValidateSignup(name, email, password)
	if err != nil {
		return Ticket{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Ticket{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    s.now(),
	}

	if err := s.users.InsertOne(ctx, user); err != nil {
		return Ticket{}, &StoreError{Op: "insert user", Err: err}
	}

	return Ticket{
		UserID:    user.ID.String(),
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: s.now().Add(SessionTTL),
	}, nil
}

// Login authenticates an email/password pair against the credential store.
// Anything other than exactly one record matching the email is treated as
// not found: the store enforces no uniqueness, and the service must not
// authenticate against an ambiguous result.
func (s *Service) Login(ctx context.Context, email, password string) (Ticket, error) {
	in, err := ValidateLogin(email, password)
	if err != nil {
		return Ticket{}, err
	}

	matches, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return Ticket{}, &StoreError{Op: "find user", Err: err}
	}

	if len(matches) != 1 {
		return Ticket{}, ErrEmailNotFound
	}

	u := matches[0]
	if err := VerifyPassword(u.PasswordHash, in.Password); err != nil {
		return Ticket{}, ErrIncorrectPassword
	}

	return Ticket{
		UserID:    u.ID.String(),
		Name:      u.Name,
		Role:      u.Role,
		ExpiresAt: s.now().Add(SessionTTL),
	}, nil
}
