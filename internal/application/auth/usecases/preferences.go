package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

// PreferencesUseCase reads and writes the opaque preferences blob on the
// session's own account.
type PreferencesUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewPreferencesUseCase(users user.Repository, log logger.Interface) *PreferencesUseCase {
	return &PreferencesUseCase{users: users, logger: log}
}

func (uc *PreferencesUseCase) Get(ctx context.Context, userID uint) (string, error) {
	existing, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return existing.Preferences, nil
}

// Update stores the blob after checking it is well-formed JSON; the server
// does not interpret its contents.
func (uc *PreferencesUseCase) Update(ctx context.Context, userID uint, preferences string) error {
	if !json.Valid([]byte(preferences)) {
		return fmt.Errorf("preferences must be valid JSON")
	}

	existing, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	existing.Preferences = preferences
	if err := uc.users.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
