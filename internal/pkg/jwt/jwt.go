package jwt

import (
	"errors"
	"fmt"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims follow the auth provider's session template. Older tokens only carry the user in sub.
type Claims struct {
	UserID uuid.UUID `json:"user_id,omitempty"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Subject resolves the session user, preferring the explicit claim over sub.
func (c *Claims) Subject() (uuid.UUID, error) {
	if c.UserID != uuid.Nil {
		return c.UserID, nil
	}
	id, err := uuid.Parse(c.RegisteredClaims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// Service validates HS256 session tokens signed with the secret shared with the auth provider.
// Issue mints tokens for local tooling and tests.
type Service struct {
	secretKey []byte
	lifetime  time.Duration
	issuer    string
	audience  string
	parser    *jwt.Parser
}

func NewService(cfg config.JWTConfig) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	lifetime, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION %q: %w", cfg.Duration, err)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Service{
		secretKey: []byte(cfg.Secret),
		lifetime:  lifetime,
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		parser:    jwt.NewParser(opts...),
	}, nil
}

func (s *Service) Issue(userID uuid.UUID, role user.Role, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := claims.Subject()
	if err != nil {
		return nil, err
	}
	claims.UserID = userID
	return claims, nil
}
