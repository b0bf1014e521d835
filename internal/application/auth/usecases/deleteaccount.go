package usecases

import (
	"context"
	"fmt"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type DeleteAccountCommand struct {
	Token    string
	Name     string
	Password string
}

type DeleteAccountUseCase struct {
	users    user.Repository
	hasher   user.PasswordHasher
	sessions *auth.SessionManager
	logger   logger.Interface
}

func NewDeleteAccountUseCase(users user.Repository, hasher user.PasswordHasher, sessions *auth.SessionManager, log logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{users: users, hasher: hasher, sessions: sessions, logger: log}
}

// Execute removes the account after binding the session to it and
// re-checking the password. Projects, pages, and sub-content go with it
// through the schema's cascading foreign keys, not application cleanup.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) error {
	existing, err := uc.users.GetByName(ctx, cmd.Name)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return auth.ErrInvalidCredentials
	}

	if !uc.sessions.VerifySession(ctx, cmd.Token, existing.ID) {
		return auth.ErrInvalidSession
	}

	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return auth.ErrInvalidCredentials
	}

	if err := uc.users.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted", "user_id", existing.ID)
	return nil
}
