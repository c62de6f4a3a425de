package database

import (
	"context"
	"testing"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates an approved admin", func(t *testing.T) {
		repo := repositories.NewMemorySkaterRepository()

		require.NoError(t, SeedAdmin(ctx, repo, "admin@gmail.com", "admin123!"))

		admin, err := repo.FindByEmail(ctx, "admin@gmail.com")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.True(t, admin.Approved)
		assert.True(t, auth.CheckPasswordHash("admin123!", admin.PasswordHash))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		repo := repositories.NewMemorySkaterRepository()
		require.NoError(t, SeedAdmin(ctx, repo, "admin@gmail.com", "first-pass1!"))
		require.NoError(t, SeedAdmin(ctx, repo, "admin@gmail.com", "second-pass1!"))

		all, err := repo.ListAll(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, auth.CheckPasswordHash("first-pass1!", all[0].PasswordHash), "password must not be reset")
	})

	t.Run("no password means no account", func(t *testing.T) {
		repo := repositories.NewMemorySkaterRepository()
		require.NoError(t, SeedAdmin(ctx, repo, "admin@gmail.com", ""))

		admin, err := repo.FindByEmail(ctx, "admin@gmail.com")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestDialectorFor(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{DriverPostgres, DriverMySQL} {
		d, err := dialectorFor(driver, "dsn")
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := dialectorFor(DriverMemory, "")
	assert.Error(t, err, "memory has no SQL dialect")

	_, err = dialectorFor("sqlite", "")
	assert.Error(t, err)
}
