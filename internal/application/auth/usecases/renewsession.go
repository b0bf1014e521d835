package usecases

import (
	"context"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

type RenewSessionCommand struct {
	Token     string
	IPAddress string
}

type RenewSessionUseCase struct {
	sessions *auth.SessionManager
	logger   logger.Interface
}

func NewRenewSessionUseCase(sessions *auth.SessionManager, log logger.Interface) *RenewSessionUseCase {
	return &RenewSessionUseCase{sessions: sessions, logger: log}
}

// Execute issues a fresh token for a valid session presented from the same
// IP it was created with. The old token remains valid until its own expiry.
func (uc *RenewSessionUseCase) Execute(ctx context.Context, cmd RenewSessionCommand) (string, error) {
	return uc.sessions.RenewSession(ctx, cmd.Token, cmd.IPAddress)
}
