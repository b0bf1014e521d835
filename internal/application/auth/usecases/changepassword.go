package usecases

import (
	"context"
	"fmt"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type ChangePasswordCommand struct {
	Token           string
	Name            string
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	users    user.Repository
	hasher   user.PasswordHasher
	sessions *auth.SessionManager
	logger   logger.Interface
}

func NewChangePasswordUseCase(users user.Repository, hasher user.PasswordHasher, sessions *auth.SessionManager, log logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{users: users, hasher: hasher, sessions: sessions, logger: log}
}

// Execute binds the mutation to a specific identity: the session must be
// valid AND belong to the named account, even though the token alone
// already encodes a user.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
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

	if err := existing.VerifyPassword(cmd.CurrentPassword, uc.hasher); err != nil {
		return auth.ErrInvalidCredentials
	}

	if err := existing.ChangePassword(cmd.NewPassword, uc.hasher); err != nil {
		return err
	}

	if err := uc.users.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", existing.ID)
	return nil
}
