package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

type stubUserService struct {
	users []*domain.User
	err   error
}

func (s *stubUserService) ListUsers(context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestUserHandler_List_OmitsHash(t *testing.T) {
	h := NewUserHandler(&stubUserService{users: []*domain.User{
		{ID: "u1", Email: "a@example.com", PasswordHash: "$2a$10$secret"},
	}})
	c, rec := newContext(http.MethodGet, "/api/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newContext(http.MethodGet, "/api/users/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
