package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// ListProjects returns all projects, or only featured ones, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, featuredOnly bool) ([]*domain.Project, error) {
	projects, err := s.repo.List(ctx, ports.ProjectFilter{FeaturedOnly: featuredOnly})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProject persists a new project owned by actor. The owner is always
// taken from actor, never from input.
func (s *ProjectService) CreateProject(ctx context.Context, actor *domain.User, input ports.ProjectInput) (*domain.Project, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		Technologies: cloneTags(input.Technologies),
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		Featured:     input.Featured,
		UserID:       actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to create project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info().Str("project_id", created.ID).Str("user_id", actor.ID).Msg("project created")
	return created, nil
}

// UpdateProject replaces the editable fields of a project the actor may modify.
func (s *ProjectService) UpdateProject(ctx context.Context, actor *domain.User, id string, input ports.ProjectInput) (*domain.Project, error) {
	existing, err := s.authorizedProject(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Image = input.Image
	existing.Technologies = cloneTags(input.Technologies)
	existing.GithubURL = input.GithubURL
	existing.LiveURL = input.LiveURL
	existing.Featured = input.Featured
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.authorizedProject(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.logger.Info().Str("project_id", id).Str("user_id", actor.ID).Msg("project deleted")
	return nil
}

func (s *ProjectService) authorizedProject(ctx context.Context, actor *domain.User, id string) (*domain.Project, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.CanBeModifiedBy(actor) {
		return nil, domain.ErrNotOwner
	}
	return project, nil
}

func cloneTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
