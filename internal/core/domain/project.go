package domain

import "time"

// Project is a portfolio entry owned by exactly one user.
type Project struct {
	ID           string
	Title        string
	Description  string
	Image        string
	Technologies []string
	GithubURL    string
	LiveURL      string
	Featured     bool
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanBeModifiedBy reports whether actor may update or delete the project:
// the owner always can, an administrator can act on anyone's project.
func (p *Project) CanBeModifiedBy(actor *User) bool {
	if p == nil || actor == nil {
		return false
	}
	return p.UserID == actor.ID || actor.IsAdmin()
}
