package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio/internal/api/metrics"
	"github.com/devportfolio/portfolio/internal/core/domain"
)

// RequireRole admits only identities holding role. It must be placed after
// Authenticate; without an attached identity it rejects with 401.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := IdentityFrom(c)
			if user == nil {
				return domain.ErrTokenMissing
			}
			if !user.HasRole(role) {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return &domain.RoleError{Required: role}
			}
			return next(c)
		}
	}
}

// Protect returns the ordered stages for a protected route: auth first, then
// one role gate per role.
func Protect(auth echo.MiddlewareFunc, roles ...string) []echo.MiddlewareFunc {
	stages := make([]echo.MiddlewareFunc, 0, len(roles)+1)
	stages = append(stages, auth)
	for _, r := range roles {
		stages = append(stages, RequireRole(r))
	}
	return stages
}
