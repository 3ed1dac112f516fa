//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, groups ...string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.ServiceTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.MintServiceToken(subject, groups...)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, groups ...string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.MintServiceToken(subject, groups...)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
