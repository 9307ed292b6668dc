package handler

import (
	"time"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

// messageResponse is the envelope used for errors and bare acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

// projectRequest carries the editable fields of a project. There is no owner
// field: the owner is always the authenticated identity.
type projectRequest struct {
	Title        string   `json:"title"        validate:"required,max=200"`
	Description  string   `json:"description"  validate:"required"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"    validate:"omitempty,url"`
	LiveURL      string   `json:"liveUrl"      validate:"omitempty,url"`
	Featured     bool     `json:"featured"`
}

func (r projectRequest) toInput() ports.ProjectInput {
	return ports.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		Technologies: r.Technologies,
		GithubURL:    r.GithubURL,
		LiveURL:      r.LiveURL,
		Featured:     r.Featured,
	}
}

type projectResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Featured     bool      `json:"featured"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	tags := p.Technologies
	if tags == nil {
		tags = []string{}
	}
	return projectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: tags,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Featured:     p.Featured,
		UserID:       p.UserID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectResponses(ps []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProjectResponse(p))
	}
	return out
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
