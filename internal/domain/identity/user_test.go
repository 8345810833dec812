package identity

import (
	"testing"

	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("budi", "secret123", RoleUser)
		require.NoError(t, err)

		assert.Equal(t, "budi", user.Username)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.Equal(t, RoleUser, user.Role)
		assert.NotEqual(t, "", user.ID.String())
	})

	t.Run("normalizes username to lowercase", func(t *testing.T) {
		user, err := NewUser("  Budi ", "secret123", RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "budi", user.Username)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("   ", "secret123", RoleUser)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_USERNAME", domainErr.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("budi", "12345", RoleUser)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("budi", "secret123", Role("superuser"))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ROLE", domainErr.Code)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("budi", "secret123", RoleUser)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret123"))
	assert.False(t, user.VerifyPassword("wrong"))
	assert.False(t, user.VerifyPassword(""))
}

func TestUser_IsAdmin(t *testing.T) {
	admin, err := NewUser("admin", "secret123", RoleAdmin)
	require.NoError(t, err)
	user, err := NewUser("budi", "secret123", RoleUser)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}
