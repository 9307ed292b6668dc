package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// JWTAuthority implements ports.TokenAuthority with HS256-signed JWTs.
// Tokens carry the identity id as "sub" plus "iat", "exp" and a random "jti".
type JWTAuthority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a JWTAuthority.
type Option func(*JWTAuthority)

// WithClock overrides the time source used for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(a *JWTAuthority) { a.now = now }
}

func NewJWTAuthority(secret string, ttl time.Duration, opts ...Option) (*JWTAuthority, error) {
	if secret == "" {
		return nil, errors.New("jwt authority: empty signing secret")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	a := &JWTAuthority{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *JWTAuthority) Issue(identityID string) (string, error) {
	if identityID == "" {
		return "", errors.New("jwt authority: empty identity id")
	}

	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   identityID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("jwt authority: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure wraps
// domain.ErrTokenInvalid.
func (a *JWTAuthority) Verify(token string) (*ports.Session, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.Session{
		IdentityID: claims.Subject,
		TokenID:    claims.ID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
