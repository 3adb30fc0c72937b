package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tamagotchi-api/internal/ports/auth"
)

var (
	// ErrSecretMissing: sin secret configurado no se firma ni verifica nada
	// (fail closed; jamás un default adivinable).
	ErrSecretMissing = errors.New("jwt secret is not configured")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

const defaultTTL = 24 * time.Hour

// Manager emite y verifica bearer tokens HS256 con subject = userID,
// issued-at y expiración de 24h. Implementa auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string) (*Manager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrSecretMissing
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    defaultTTL,
		now:    time.Now,
	}, nil
}

// Issue firma un token para el usuario dado.
func (m *Manager) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("issue token: empty user id")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify valida firma, expiración y subject, y devuelve los claims.
func (m *Manager) Verify(ctx context.Context, tokenString string) (auth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, ErrTokenExpired
		}
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return auth.Claims{UserID: claims.Subject}, nil
}
