package usecases

import (
	"context"
	"fmt"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type LoginCommand struct {
	Name      string
	Password  string
	IPAddress string
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	users    user.Repository
	hasher   user.PasswordHasher
	sessions *auth.SessionManager
	logger   logger.Interface
}

func NewLoginUseCase(users user.Repository, hasher user.PasswordHasher, sessions *auth.SessionManager, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{users: users, hasher: hasher, sessions: sessions, logger: log}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.users.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Same error whether the name is unknown or the password wrong.
	if existing == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "name", cmd.Name, "ip", cmd.IPAddress)
		return nil, auth.ErrInvalidCredentials
	}

	token, err := uc.sessions.CreateSession(ctx, existing.ID, cmd.IPAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID)
	return &LoginResult{User: existing, Token: token}, nil
}
