package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetIdentity(c, &domain.User{ID: "a1", Role: domain.RoleAdmin}, &ports.Session{IdentityID: "a1"})

	called := false
	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	if err != nil || !called {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetIdentity(c, alice, &ports.Session{IdentityID: alice.ID})

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var roleErr *domain.RoleError
	if !errors.As(err, &roleErr) || roleErr.Required != domain.RoleAdmin {
		t.Fatalf("expected RoleError, got %v", err)
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("RoleError must unwrap to ErrForbidden")
	}
}

func TestRequireRole_FailsClosedWithoutIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected 401-class error, got %v", err)
	}
}

func TestProtect_OrdersStages(t *testing.T) {
	cfg, _ := newAuthConfig()
	stages := Protect(Authenticate(cfg), domain.RoleAdmin)
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			_ = c.NoContent(http.StatusForbidden)
		case errors.Is(err, domain.ErrUnauthorized):
			_ = c.NoContent(http.StatusUnauthorized)
		default:
			_ = c.NoContent(http.StatusInternalServerError)
		}
	}
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, stages...)

	// alice is authenticated but not an admin, so the role stage must reject.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Without a token the auth stage rejects before the role stage runs.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
