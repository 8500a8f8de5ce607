//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ruleta-server/internal/pkg/errs"
	"ruleta-server/internal/pkg/jwt"
	"ruleta-server/internal/pkg/password"
	"ruleta-server/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminAuth(t *testing.T, plain string) (usecase.AdminAuth, *jwt.Service) {
	t.Helper()
	hash := ""
	if plain != "" {
		var err error
		hash, err = password.HashPassword(plain, 4)
		require.NoError(t, err)
	}
	svc := jwt.NewService("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewAdminAuth(hash, svc, logger), svc
}

func TestAdminAuth_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password yields an admin token", func(t *testing.T) {
		auth, svc := newAdminAuth(t, "correct horse")

		result, err := auth.Login(ctx, "correct horse")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, time.Minute)

		subject, role, err := usecase.NewTokenValidator(svc).ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
		assert.Equal(t, jwt.RoleAdmin, role)
	})

	t.Run("wrong or empty password", func(t *testing.T) {
		auth, _ := newAdminAuth(t, "correct horse")

		for _, pw := range []string{"battery staple", ""} {
			_, err := auth.Login(ctx, pw)
			assert.True(t, errs.Is(err, errs.ErrInvalidCredentials), "password %q: %v", pw, err)
		}
	})

	t.Run("no configured hash", func(t *testing.T) {
		auth, _ := newAdminAuth(t, "")

		_, err := auth.Login(ctx, "anything")
		assert.True(t, errs.Is(err, errs.ErrAuthenticationFailed))
	})
}

func TestTokenValidator_RejectsNonAdminRole(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	token, _, err := svc.GenerateToken("someone", "viewer")
	require.NoError(t, err)

	_, _, err = usecase.NewTokenValidator(svc).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
