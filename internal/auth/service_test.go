package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia-backend/internal/database"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "academia.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	admins := database.NewAdminRepo(db)
	sessions := database.NewSessionRepo(db, "test-secret")

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, admins.Create(context.Background(), "admin", hash))

	return NewService(admins, sessions, 24*time.Hour)
}

func TestServiceLoginAndValidate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, session, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "admin", session.Usuario)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, 5*time.Second)

	resolved, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", resolved.Usuario)
}

func TestServiceLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, wrongPassword := svc.Login(ctx, "admin", "nope")
	_, _, unknownUser := svc.Login(ctx, "nobody", "admin123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestServiceLogoutIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Validate(ctx, token)
	assert.Error(t, err)

	// Destroying an already-destroyed session still succeeds
	require.NoError(t, svc.Logout(ctx, token))
}
