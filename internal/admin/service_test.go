package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffloras/comp2537-assignment2/internal/model"
)

type fakeUserStore struct {
	listing   []model.UserListing
	updates   map[uuid.UUID]string
	updateErr error
	findErr   error
}

func newFakeUserStore(listing ...model.UserListing) *fakeUserStore {
	return &fakeUserStore{
		listing: listing,
		updates: make(map[uuid.UUID]string),
	}
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id uuid.UUID, role string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[id] = role
	return nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]model.UserListing, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.listing, nil
}

func TestSetUserRole_NoMutationStillLists(t *testing.T) {
	store := newFakeUserStore(
		model.UserListing{ID: uuid.New(), Name: "alice", Role: model.RoleUser},
	)
	svc := NewService(store)

	listing, err := svc.SetUserRole(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, listing, 1)
	assert.Empty(t, store.updates)
}

func TestSetUserRole_PartialRequestIsReadOnly(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	// Only one of target/role supplied: no mutation is attempted.
	_, err := svc.SetUserRole(context.Background(), uuid.NewString(), "")
	require.NoError(t, err)
	_, err = svc.SetUserRole(context.Background(), "", model.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, store.updates)
}

func TestSetUserRole_AppliesUpdate(t *testing.T) {
	target := uuid.New()
	store := newFakeUserStore(
		model.UserListing{ID: target, Name: "bob", Role: model.RoleAdmin},
	)
	svc := NewService(store)

	listing, err := svc.SetUserRole(context.Background(), target.String(), model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, store.updates[target])
	assert.Len(t, listing, 1)
}

func TestSetUserRole_RejectsUnknownRole(t *testing.T) {
	store := newFakeUserStore(
		model.UserListing{ID: uuid.New(), Name: "bob", Role: model.RoleUser},
	)
	svc := NewService(store)

	listing, err := svc.SetUserRole(context.Background(), uuid.NewString(), "superadmin")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Empty(t, store.updates)
	// The listing is still returned alongside the rejection.
	assert.Len(t, listing, 1)
}

func TestSetUserRole_RejectsBadTargetID(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	_, err := svc.SetUserRole(context.Background(), "not-a-uuid", model.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Empty(t, store.updates)
}

func TestSetUserRole_StoreFailures(t *testing.T) {
	store := newFakeUserStore()
	store.updateErr = errors.New("connection refused")
	svc := NewService(store)

	_, err := svc.SetUserRole(context.Background(), uuid.NewString(), model.RoleUser)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRole)

	store.updateErr = nil
	store.findErr = errors.New("connection refused")
	listing, err := svc.SetUserRole(context.Background(), "", "")
	assert.Error(t, err)
	assert.Nil(t, listing)
}

func TestSetUserRole_EmptyStoreReturnsEmptyListing(t *testing.T) {
	svc := NewService(newFakeUserStore())

	listing, err := svc.SetUserRole(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, listing)
	assert.Empty(t, listing)
}
