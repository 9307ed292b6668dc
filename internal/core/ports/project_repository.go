package ports

import (
	"context"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

// ProjectFilter narrows a project listing. The zero value matches everything.
type ProjectFilter struct {
	FeaturedOnly bool
	UserID       string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// FindByID returns domain.ErrProjectNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns matching projects, newest first.
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
