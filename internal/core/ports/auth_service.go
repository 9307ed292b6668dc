package ports

import (
	"context"
	"time"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

// Session is the verified content of a session token.
type Session struct {
	IdentityID string
	TokenID    string
	ExpiresAt  time.Time
}

// TokenAuthority mints and verifies session tokens. Verify performs no I/O.
type TokenAuthority interface {
	Issue(identityID string) (string, error)
	Verify(token string) (*Session, error)
}

// RevocationList records tokens that were logged out before they expired.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, session *Session) error
}
