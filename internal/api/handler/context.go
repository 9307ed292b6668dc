package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio/internal/api/middleware"
	"github.com/devportfolio/portfolio/internal/core/domain"
)

// currentUser returns the identity attached by the Authenticate stage. A
// handler mounted without the stage fails closed instead of trusting the body.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.IdentityFrom(c)
	if user == nil {
		return nil, domain.ErrTokenMissing
	}
	return user, nil
}
