//go:build unit

package authtest

import (
	"testing"
	"time"

	"ruleta-server/internal/pkg/config"
	"ruleta-server/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := h.Service(t).GenerateToken("admin", role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role string) string {
	t.Helper()
	past := time.Now().Add(-2 * time.Hour)
	claims := jwt.Claims{
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  gojwt.NewNumericDate(past),
			ExpiresAt: gojwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
