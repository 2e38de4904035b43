package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/modules/auth"
)

func TestMemoryStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storage := auth.NewMemoryStorage()

	user := &auth.User{ID: uuid.New(), Username: "Jane@Example.com", Name: "Jane"}
	require.NoError(t, storage.CreateUser(ctx, user))

	t.Run("duplicate username is rejected case-insensitively", func(t *testing.T) {
		err := storage.CreateUser(ctx, &auth.User{ID: uuid.New(), Username: " jane@example.com"})
		assert.ErrorIs(t, err, auth.ErrUserExists)
	})

	t.Run("lookup by username and id", func(t *testing.T) {
		byName, err := storage.GetUserByUsername(ctx, "JANE@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byID, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", byID.Name)
	})

	t.Run("returned users are copies", func(t *testing.T) {
		u, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		u.Name = "changed"

		again, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", again.Name)
	})

	t.Run("update", func(t *testing.T) {
		u, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		u.Phone = "555"
		require.NoError(t, storage.UpdateUser(ctx, u))

		again, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "555", again.Phone)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := storage.GetUserByID(ctx, uuid.New())
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		_, err = storage.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		assert.ErrorIs(t, storage.UpdateUser(ctx, &auth.User{ID: uuid.New()}), auth.ErrUserNotFound)
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := auth.Migrations.ReadDir(auth.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	data, err := auth.Migrations.ReadFile(auth.MigrationsDir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS users")
}
