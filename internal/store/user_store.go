package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ffloras/comp2537-assignment2/internal/model"
)

// DB is the subset of pgxpool.Pool the store uses. Tests satisfy it with
// pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists user records in PostgreSQL.
type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

// InsertOne stores a new user and fills in the store-assigned id.
func (s *UserStore) InsertOne(ctx context.Context, u *model.User) error {
	sql := `INSERT INTO users (name, email, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.QueryRow(ctx, sql,
		u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByEmail returns every user whose email matches exactly. Email is not
// unique in the schema, so more than one row is possible; callers decide
// what an ambiguous result means.
func (s *UserStore) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	sql := `SELECT id, name, email, password_hash, role, created_at
            FROM users WHERE email = $1`
	rows, err := s.db.Query(ctx, sql, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find users by email: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

// UpdateRole sets the role of a single user record.
func (s *UserStore) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	sql := `UPDATE users SET role = $2 WHERE id = $1`
	if _, err := s.db.Exec(ctx, sql, id, role); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return nil
}

// FindAll returns the {id, name, role} projection of every user in
// store-natural order. The password hash never leaves the store through
// this path.
func (s *UserStore) FindAll(ctx context.Context) ([]model.UserListing, error) {
	sql := `SELECT id, name, role FROM users`
	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var listing []model.UserListing
	for rows.Next() {
		var l model.UserListing
		if err := rows.Scan(&l.ID, &l.Name, &l.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user listing: %w", err)
		}
		listing = append(listing, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user listing: %w", err)
	}
	return listing, nil
}
