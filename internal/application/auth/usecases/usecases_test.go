package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	infraauth "github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/migration"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/repository"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type fixture struct {
	users    user.Repository
	hasher   user.PasswordHasher
	sessions *auth.SessionManager
}

func setup(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	return &fixture{
		users:    repository.NewUserRepository(gdb),
		hasher:   infraauth.NewBcryptPasswordHasher(bcrypt.MinCost),
		sessions: auth.NewSessionManager(repository.NewSessionRepository(gdb), time.Hour, logger.NewLogger()),
	}
}

func (f *fixture) signup(t *testing.T, name, password string) *user.User {
	t.Helper()
	u, err := NewSignupUseCase(f.users, f.hasher, logger.NewLogger()).
		Execute(context.Background(), SignupCommand{Name: name, Password: password})
	require.NoError(t, err)
	return u
}

func TestSignupUseCase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uc := NewSignupUseCase(f.users, f.hasher, logger.NewLogger())

	t.Run("creates the account", func(t *testing.T) {
		u, err := uc.Execute(ctx, SignupCommand{Name: "alice", Password: "correct horse"})
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.NotEqual(t, "correct horse", u.PasswordHash)
	})

	t.Run("taken name is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SignupCommand{Name: "alice", Password: "another pass"})
		assert.ErrorIs(t, err, auth.ErrNameTaken)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SignupCommand{Name: "bob", Password: "short"})
		assert.Error(t, err)
	})
}

func TestLoginUseCase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signup(t, "alice", "correct horse")

	uc := NewLoginUseCase(f.users, f.hasher, f.sessions, logger.NewLogger())

	t.Run("issues a verifiable token", func(t *testing.T) {
		result, err := uc.Execute(ctx, LoginCommand{Name: "alice", Password: "correct horse", IPAddress: "203.0.113.7"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)

		valid, sess := f.sessions.VerifySessionForAccess(ctx, result.Token)
		assert.True(t, valid)
		assert.Equal(t, result.User.ID, sess.UserID)
	})

	t.Run("unknown name and wrong password fail identically", func(t *testing.T) {
		_, unknownErr := uc.Execute(ctx, LoginCommand{Name: "nobody", Password: "correct horse"})
		_, wrongErr := uc.Execute(ctx, LoginCommand{Name: "alice", Password: "wrong horse"})

		assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, auth.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestChangePasswordUseCase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	alice := f.signup(t, "alice", "correct horse")
	mallory := f.signup(t, "mallory", "evil password")

	aliceToken, err := f.sessions.CreateSession(ctx, alice.ID, "203.0.113.7")
	require.NoError(t, err)
	malloryToken, err := f.sessions.CreateSession(ctx, mallory.ID, "203.0.113.8")
	require.NoError(t, err)

	uc := NewChangePasswordUseCase(f.users, f.hasher, f.sessions, logger.NewLogger())
	login := NewLoginUseCase(f.users, f.hasher, f.sessions, logger.NewLogger())

	t.Run("someone else's session cannot rotate the password", func(t *testing.T) {
		err := uc.Execute(ctx, ChangePasswordCommand{
			Token: malloryToken, Name: "alice",
			CurrentPassword: "correct horse", NewPassword: "hijacked pass",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidSession)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		err := uc.Execute(ctx, ChangePasswordCommand{
			Token: aliceToken, Name: "alice",
			CurrentPassword: "wrong horse", NewPassword: "better horse",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("valid rotation takes effect", func(t *testing.T) {
		err := uc.Execute(ctx, ChangePasswordCommand{
			Token: aliceToken, Name: "alice",
			CurrentPassword: "correct horse", NewPassword: "better horse",
		})
		require.NoError(t, err)

		_, err = login.Execute(ctx, LoginCommand{Name: "alice", Password: "correct horse"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, err = login.Execute(ctx, LoginCommand{Name: "alice", Password: "better horse"})
		assert.NoError(t, err)
	})
}

func TestDeleteAccountUseCase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	alice := f.signup(t, "alice", "correct horse")

	token, err := f.sessions.CreateSession(ctx, alice.ID, "203.0.113.7")
	require.NoError(t, err)

	uc := NewDeleteAccountUseCase(f.users, f.hasher, f.sessions, logger.NewLogger())

	t.Run("password re-check guards the deletion", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteAccountCommand{Token: token, Name: "alice", Password: "wrong horse"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("valid deletion removes the account", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, DeleteAccountCommand{Token: token, Name: "alice", Password: "correct horse"}))

		found, err := f.users.GetByName(ctx, "alice")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPreferencesUseCase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	alice := f.signup(t, "alice", "correct horse")

	uc := NewPreferencesUseCase(f.users, logger.NewLogger())

	t.Run("defaults to an empty object", func(t *testing.T) {
		prefs, err := uc.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.JSONEq(t, "{}", prefs)
	})

	t.Run("stores an opaque blob", func(t *testing.T) {
		require.NoError(t, uc.Update(ctx, alice.ID, `{"theme":"dark"}`))

		prefs, err := uc.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"dark"}`, prefs)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		assert.Error(t, uc.Update(ctx, alice.ID, "{not json"))
	})
}
