package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by id
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	c := cloneUser(user)
	c.ID = "id-" + user.Email
	r.users[c.ID] = cloneUser(c)
	return c, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// stubTokens issues "tok:<id>" and never verifies; services only issue.
type stubTokens struct{}

func (stubTokens) Issue(id string) (string, error) { return "tok:" + id, nil }

func (stubTokens) Verify(string) (*ports.Session, error) { return nil, domain.ErrTokenInvalid }

type stubRevocations struct {
	revoked map[string]time.Time
	err     error
}

func (s *stubRevocations) Revoke(_ context.Context, id string, exp time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[id] = exp
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := s.revoked[id]
	return ok, nil
}

func newTestAuthService(repo *stubUserRepo, rev ports.RevocationList) *AuthService {
	return NewAuthService(repo, stubTokens{}, rev, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "  Alice@Example.com ", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token != "tok:"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	cases := []ports.RegisterInput{
		{Name: "", Email: "a@b.c", Password: "pass123"},
		{Name: "A", Email: "", Password: "pass123"},
		{Name: "A", Email: "a@b.c", Password: "123"},
	}
	for _, in := range cases {
		if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "secret1"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "CAROL@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token != "tok:"+registered.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@example.com", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFault(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc := newTestAuthService(repo, nil)

	_, _, err := svc.Login(context.Background(), "a@example.com", "pass")
	if !errors.Is(err, repo.findErr) || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped store fault, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	rev := &stubRevocations{revoked: map[string]time.Time{}}
	svc := newTestAuthService(newStubUserRepo(), rev)
	exp := time.Now().Add(time.Hour)

	if err := svc.Logout(context.Background(), &ports.Session{IdentityID: "u1", TokenID: "jti-1", ExpiresAt: exp}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got, ok := rev.revoked["jti-1"]; !ok || !got.Equal(exp) {
		t.Fatalf("expected jti-1 revoked until %v, got %v", exp, rev.revoked)
	}
}

func TestAuthService_Logout_WithoutRevocationList(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if err := svc.Logout(context.Background(), &ports.Session{TokenID: "jti"}); err != nil {
		t.Fatalf("expected no-op logout, got %v", err)
	}
}
