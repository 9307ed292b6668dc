package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio/internal/api/metrics"
	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

// IdentityFinder resolves the subject of a verified token.
type IdentityFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthConfig wires the Authenticate stage. Revocations is optional.
type AuthConfig struct {
	Tokens      ports.TokenAuthority
	Identities  IdentityFinder
	Revocations ports.RevocationList
}

// Authenticate verifies the bearer token and attaches the resolved identity
// and session to the context. Failures are returned as domain errors and
// rendered by the central error handler; next is never called on failure.
func Authenticate(cfg AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return domain.ErrTokenMissing
			}

			session, err := cfg.Tokens.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("token_failed").Inc()
				return err
			}

			ctx := c.Request().Context()
			if cfg.Revocations != nil {
				revoked, err := cfg.Revocations.IsRevoked(ctx, session.TokenID)
				if err != nil {
					return fmt.Errorf("authenticate: revocation check: %w", err)
				}
				if revoked {
					metrics.AuthRejectionsTotal.WithLabelValues("token_revoked").Inc()
					return domain.ErrTokenRevoked
				}
			}

			start := time.Now()
			user, err := cfg.Identities.FindByID(ctx, session.IdentityID)
			metrics.IdentityLookupDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_not_found").Inc()
					return domain.ErrIdentityGone
				}
				return fmt.Errorf("authenticate: identity lookup: %w", err)
			}

			SetIdentity(c, user, session)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
