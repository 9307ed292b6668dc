package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

const (
	identityKey = "portfolio.identity"
	sessionKey  = "portfolio.session"
)

// IdentityFrom returns the identity attached by Authenticate, or nil.
func IdentityFrom(c echo.Context) *domain.User {
	u, _ := c.Get(identityKey).(*domain.User)
	return u
}

// SessionFrom returns the verified session attached by Authenticate, or nil.
func SessionFrom(c echo.Context) *ports.Session {
	s, _ := c.Get(sessionKey).(*ports.Session)
	return s
}

// SetIdentity attaches a resolved identity and session to c.
func SetIdentity(c echo.Context, u *domain.User, s *ports.Session) {
	c.Set(identityKey, u)
	c.Set(sessionKey, s)
}
