// Package usecases holds the account and session workflows invoked by the
// HTTP layer.
package usecases

import (
	"context"
	"fmt"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type SignupCommand struct {
	Name     string
	Password string
}

type SignupUseCase struct {
	users  user.Repository
	hasher user.PasswordHasher
	logger logger.Interface
}

func NewSignupUseCase(users user.Repository, hasher user.PasswordHasher, log logger.Interface) *SignupUseCase {
	return &SignupUseCase{users: users, hasher: hasher, logger: log}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*user.User, error) {
	existing, err := uc.users.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check user name: %w", err)
	}
	if existing != nil {
		return nil, auth.ErrNameTaken
	}

	newUser, err := user.New(cmd.Name, cmd.Password, uc.hasher)
	if err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user account created", "user_id", newUser.ID, "name", newUser.Name)
	return newUser, nil
}
