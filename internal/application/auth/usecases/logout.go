package usecases

import (
	"context"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions *auth.SessionManager
	logger   logger.Interface
}

func NewLogoutUseCase(sessions *auth.SessionManager, log logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: log}
}

// Execute soft-revokes the token. The caller must discard its cookie; the
// server does not blacklist beyond flipping the active flag.
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	return uc.sessions.DeactivateSession(ctx, token)
}
