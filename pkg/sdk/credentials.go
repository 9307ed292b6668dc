package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is a persisted session.
type Credentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	User      *User     `json:"user,omitempty"`
}

// CredentialStore persists a session between process runs.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}

// NewCredentials builds credentials from an auth result, reading the expiry
// from the token without verifying it. Verification is the server's job.
func NewCredentials(res *AuthResult) *Credentials {
	creds := &Credentials{Token: res.Token, User: res.User}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(res.Token, &claims); err == nil && claims.ExpiresAt != nil {
		creds.ExpiresAt = claims.ExpiresAt.Time
	}
	return creds
}

// IsExpired reports whether the token is past its expiry. Unknown expiry is
// treated as valid and left for the server to decide.
func (c *Credentials) IsExpired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}
