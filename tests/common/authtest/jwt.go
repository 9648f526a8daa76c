//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints session tokens the way the external auth provider signs them.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, h.cfg, userID, role, time.Now())
}

// CreateExpiredToken returns a token that lapsed well beyond the configured leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	short := h.cfg
	short.Duration = "1m"
	return h.issue(t, short, userID, role, time.Now().Add(-time.Hour-h.cfg.Leeway))
}

func (h *JWTHelper) issue(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role, now time.Time) string {
	t.Helper()
	svc, err := jwt.NewService(cfg)
	require.NoError(t, err)
	token, err := svc.Issue(userID, role, now)
	require.NoError(t, err)
	return token
}
