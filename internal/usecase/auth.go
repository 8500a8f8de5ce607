package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ruleta-server/internal/pkg/errs"
	"ruleta-server/internal/pkg/jwt"
	"ruleta-server/internal/pkg/password"
)

const adminSubject = "admin"

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AdminAuth exchanges the operator password for a bearer token.
type AdminAuth interface {
	Login(ctx context.Context, plainPassword string) (*LoginResult, error)
}

type adminAuthImpl struct {
	passwordHash string
	jwtService   *jwt.Service
	logger       *slog.Logger
}

func NewAdminAuth(passwordHash string, jwtService *jwt.Service, logger *slog.Logger) AdminAuth {
	return &adminAuthImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (a *adminAuthImpl) Login(ctx context.Context, plainPassword string) (*LoginResult, error) {
	if a.passwordHash == "" {
		a.logger.WarnContext(ctx, "Admin login attempted but no password hash is configured")
		return nil, errs.ErrAuthenticationFailed
	}

	if err := password.ComparePassword(a.passwordHash, plainPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.ErrInvalidCredentials
		}
		a.logger.ErrorContext(ctx, "Admin password hash is unusable", "error", err.Error())
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	token, expiresAt, err := a.jwtService.GenerateToken(adminSubject, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to sign token"), errs.ErrAuthenticationFailed)
	}

	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
