package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

func TestUserService_ListUsers_EmptyIsNonNil(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if users == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestUserService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["u1"] = &domain.User{ID: "u1", Name: "Ann"}
	svc := NewUserService(repo)

	u, err := svc.GetUser(context.Background(), "u1")
	if err != nil || u.Name != "Ann" {
		t.Fatalf("unexpected result: %+v, %v", u, err)
	}
	if _, err := svc.GetUser(context.Background(), "u2"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
