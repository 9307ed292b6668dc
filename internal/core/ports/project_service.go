package ports

import (
	"context"

	"github.com/devportfolio/portfolio/internal/core/domain"
)

// ProjectInput carries the client-editable project fields. Ownership is never
// part of the input; the service stamps it from the authenticated actor.
type ProjectInput struct {
	Title        string
	Description  string
	Image        string
	Technologies []string
	GithubURL    string
	LiveURL      string
	Featured     bool
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, actor *domain.User, input ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor *domain.User, id string, input ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor *domain.User, id string) error
}

// UserService exposes identity reads for administrators.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
