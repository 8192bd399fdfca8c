package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepoCreateAndGet(t *testing.T) {
	repo := NewAdminRepo(newTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.Create(ctx, "admin", "$2a$10$fakehash"))

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Usuario)
	assert.Equal(t, "$2a$10$fakehash", admin.Senha)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdminRepoUnknownUsername(t *testing.T) {
	repo := NewAdminRepo(newTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminRepoUsernameIsUnique(t *testing.T) {
	repo := NewAdminRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "admin", "hash-1"))
	assert.Error(t, repo.Create(ctx, "admin", "hash-2"))
}
