package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffloras/comp2537-assignment2/internal/model"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestInsertOne_AssignsStoreID(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	id := uuid.New()
	created := time.Now()
	u := &model.User{
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         model.RoleUser,
		CreatedAt:    created,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "alice@example.com", "$2a$12$hash", model.RoleUser, created).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))

	require.NoError(t, s.InsertOne(context.Background(), u))
	assert.Equal(t, id, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertOne_StoreError(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("connection refused"))

	err := s.InsertOne(context.Background(), &model.User{Name: "alice"})
	assert.Error(t, err)
}

func TestFindByEmail_ReturnsAllMatches(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	created := time.Now()
	rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
		AddRow(uuid.New(), "alice", "dup@example.com", "hash1", model.RoleUser, created).
		AddRow(uuid.New(), "alice2", "dup@example.com", "hash2", model.RoleUser, created)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("dup@example.com").
		WillReturnRows(rows)

	users, err := s.FindByEmail(context.Background(), "dup@example.com")
	require.NoError(t, err)
	// Email carries no unique index, so duplicates come back as-is.
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "hash2", users[1].PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NoMatches(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}))

	users, err := s.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateRole(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $2 WHERE id = $1`)).
		WithArgs(id, model.RoleAdmin).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.UpdateRole(context.Background(), id, model.RoleAdmin))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll_ProjectsListing(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	id1, id2 := uuid.New(), uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "role"}).
		AddRow(id1, "alice", model.RoleUser).
		AddRow(id2, "bob", model.RoleAdmin)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, role FROM users`)).
		WillReturnRows(rows)

	listing, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Equal(t, model.UserListing{ID: id1, Name: "alice", Role: model.RoleUser}, listing[0])
	assert.Equal(t, model.UserListing{ID: id2, Name: "bob", Role: model.RoleAdmin}, listing[1])
}

func TestFindAll_StoreError(t *testing.T) {
	mock := newMock(t)
	s := NewUserStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, role FROM users`)).
		WillReturnError(errors.New("connection refused"))

	_, err := s.FindAll(context.Background())
	assert.Error(t, err)
}
