package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository/repotest"
)

func newUsersRepo() (*repository.Users, *repotest.Collection) {
	coll := repotest.NewCollection([]string{"email"}, []string{"username"})
	return repository.NewUsers(coll), coll
}

func TestUsersCreateAndValidateCredentials(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	created, err := users.Create(ctx, "u1", "Uma", "One", "u1@x.com", "pw", []string{"pop"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotEqual(t, "pw", created.HashedPassword)
	assert.NotEmpty(t, created.HashedPassword)

	ok, err := users.ValidateCredentials(ctx, created.ID.Hex(), "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = users.ValidateCredentials(ctx, created.ID.Hex(), "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsersValidateCredentialsUnknownUser(t *testing.T) {
	users, _ := newUsersRepo()

	ok, err := users.ValidateCredentials(context.Background(), "64ddea000000000000000000", "pw")
	require.NoError(t, err)
	assert.False(t, ok)
}

// failingCollection breaks FindOne to simulate the store going away.
type failingCollection struct {
	*repotest.Collection
	findOneErr error
}

func (f *failingCollection) FindOne(ctx context.Context, filter, out any) error {
	return f.findOneErr
}

func TestUsersValidateCredentialsPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset by peer")
	users := repository.NewUsers(&failingCollection{
		Collection: repotest.NewCollection(),
		findOneErr: storeErr,
	})

	// A store failure must surface as an error, not masquerade as a
	// wrong password.
	ok, err := users.ValidateCredentials(context.Background(), "64ddea000000000000000000", "pw")
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, ok)
}

func TestUsersCreateMissingField(t *testing.T) {
	users, coll := newUsersRepo()

	_, err := users.Create(context.Background(), "u1", "", "One", "u1@x.com", "pw", []string{"pop"})
	assert.ErrorIs(t, err, models.ErrMissingParameter)
	assert.Zero(t, coll.Len())
}

func TestUsersCreateBadEmail(t *testing.T) {
	users, coll := newUsersRepo()

	_, err := users.Create(context.Background(), "u1", "Uma", "One", "not-an-email", "pw", []string{"pop"})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Zero(t, coll.Len())
}

func TestUsersDuplicateEmail(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	_, err := users.Create(ctx, "u1", "Uma", "One", "u1@x.com", "pw", []string{"pop"})
	require.NoError(t, err)

	_, err = users.Create(ctx, "u2", "Uma", "Two", "u1@x.com", "pw", []string{"pop"})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	_, err = users.Create(ctx, "u1", "Uma", "Two", "other@x.com", "pw", []string{"pop"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestUsersLookups(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	created, err := users.Create(ctx, "u1", "Uma", "One", "u1@x.com", "pw", []string{"pop"})
	require.NoError(t, err)

	byEmail, err := users.GetByEmail(ctx, "u1@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byName, err := users.GetByUsername(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = users.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUsersUpdateRehashesPassword(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	created, err := users.Create(ctx, "u1", "Uma", "One", "u1@x.com", "pw", []string{"pop"})
	require.NoError(t, err)

	updated, err := users.Update(ctx, created.ID.Hex(), "Uma", "Two", "u1@x.com", "newpw", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Two", updated.LastName)
	assert.NotEqual(t, created.HashedPassword, updated.HashedPassword)

	ok, err := users.ValidateCredentials(ctx, created.ID.Hex(), "newpw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUsersRemoveIdempotence(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	created, err := users.Create(ctx, "u1", "Uma", "One", "u1@x.com", "pw", []string{"pop"})
	require.NoError(t, err)

	require.NoError(t, users.Remove(ctx, created.ID.Hex()))
	assert.ErrorIs(t, users.Remove(ctx, created.ID.Hex()), models.ErrNotFound)
}

func TestUsersAddFriendByUsername(t *testing.T) {
	users, _ := newUsersRepo()
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", "Alice", "A", "a@x.com", "pw", []string{"pop"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, "bob", "Bob", "B", "b@x.com", "pw", []string{"rock"})
	require.NoError(t, err)

	updated, err := users.AddFriendByUsername(ctx, alice.ID.Hex(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID.Hex()}, updated.Friends)

	_, err = users.AddFriendByUsername(ctx, alice.ID.Hex(), "bob")
	assert.ErrorIs(t, err, models.ErrDuplicate)

	_, err = users.AddFriendByUsername(ctx, alice.ID.Hex(), "alice")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = users.AddFriendByUsername(ctx, alice.ID.Hex(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
