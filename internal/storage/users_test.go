package storage

import (
	"context"
	"testing"

	"filmadviser/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := users.User{Username: "alice", Password: "$2a$10$hash"}
	require.NoError(t, repo.Create(ctx, &u))
	assert.NotZero(t, u.ID)

	byName, err := repo.ByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "$2a$10$hash", byName.Password)

	byID, err := repo.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := users.User{Username: "bob", Password: "h1"}
	require.NoError(t, repo.Create(ctx, &first))

	second := users.User{Username: "bob", Password: "h2"}
	assert.ErrorIs(t, repo.Create(ctx, &second), ErrAlreadyExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserLookupNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.ByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.ByID(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
