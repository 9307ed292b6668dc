package ports

import (
	"context"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

// UserRepository defines identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no document matches,
	// including when id is not a well-formed identifier.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
