package user

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func TestNew(t *testing.T) {
	t.Run("creates user with hashed password and default preferences", func(t *testing.T) {
		u, err := New("alice", "correct horse", fakeHasher{})
		require.NoError(t, err)

		assert.Equal(t, "alice", u.Name)
		assert.Equal(t, "hashed:correct horse", u.PasswordHash)
		assert.Equal(t, "{}", u.Preferences)
	})

	t.Run("trims whitespace from name", func(t *testing.T) {
		u, err := New("  alice  ", "correct horse", fakeHasher{})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		u, err := New("   ", "correct horse", fakeHasher{})
		assert.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("rejects short password", func(t *testing.T) {
		u, err := New("alice", "short", fakeHasher{})
		assert.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	u, err := New("alice", "correct horse", fakeHasher{})
	require.NoError(t, err)

	assert.NoError(t, u.VerifyPassword("correct horse", fakeHasher{}))
	assert.Error(t, u.VerifyPassword("wrong horse", fakeHasher{}))
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := New("alice", "correct horse", fakeHasher{})
	require.NoError(t, err)

	t.Run("replaces the stored hash", func(t *testing.T) {
		err := u.ChangePassword("better horse", fakeHasher{})
		require.NoError(t, err)
		assert.NoError(t, u.VerifyPassword("better horse", fakeHasher{}))
		assert.Error(t, u.VerifyPassword("correct horse", fakeHasher{}))
	})

	t.Run("rejects short replacement", func(t *testing.T) {
		err := u.ChangePassword("tiny", fakeHasher{})
		assert.Error(t, err)
	})
}
