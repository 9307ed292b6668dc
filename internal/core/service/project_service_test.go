package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	byID       map[string]*domain.Project
	seq        int
	createErr  error
	listErr    error
	lastFilter ports.ProjectFilter
	deleted    []string
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	c.Technologies = append([]string(nil), p.Technologies...)
	return &c
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	c := cloneProject(p)
	c.ID = fmt.Sprintf("p%d", r.seq)
	r.byID[c.ID] = c
	return cloneProject(c), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) List(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	r.lastFilter = f
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Project
	for _, p := range r.byID {
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	r.byID[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newTestProjectService(repo *stubProjectRepo) *ProjectService {
	return NewProjectService(repo, zerolog.Nop())
}

var (
	owner    = &domain.User{ID: "u-owner", Role: domain.RoleUser}
	stranger = &domain.User{ID: "u-stranger", Role: domain.RoleUser}
	admin    = &domain.User{ID: "u-admin", Role: domain.RoleAdmin}
)

// ---------------------------------------------------------------------------
// CreateProject
// ---------------------------------------------------------------------------

func TestProjectService_Create_StampsOwnerFromActor(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newTestProjectService(repo)

	p, err := svc.CreateProject(context.Background(), owner, ports.ProjectInput{
		Title:        "Portfolio",
		Description:  "My site",
		Technologies: []string{"go", "", "mongo"},
		Featured:     true,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.UserID != owner.ID {
		t.Fatalf("expected owner %q, got %q", owner.ID, p.UserID)
	}
	if p.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if len(p.Technologies) != 2 || p.Technologies[0] != "go" || p.Technologies[1] != "mongo" {
		t.Fatalf("unexpected technologies: %v", p.Technologies)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestProjectService_Create_NoActor(t *testing.T) {
	svc := newTestProjectService(newStubProjectRepo())

	if _, err := svc.CreateProject(context.Background(), nil, ports.ProjectInput{Title: "x"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectService_Create_RepoError(t *testing.T) {
	repo := newStubProjectRepo()
	repo.createErr = errors.New("mongo down")
	svc := newTestProjectService(repo)

	_, err := svc.CreateProject(context.Background(), owner, ports.ProjectInput{Title: "x"})
	if err == nil || !errors.Is(err, repo.createErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListProjects / GetProject
// ---------------------------------------------------------------------------

func TestProjectService_List_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newTestProjectService(repo)

	projects, err := svc.ListProjects(context.Background(), true)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", projects)
	}
	if !repo.lastFilter.FeaturedOnly {
		t.Fatalf("expected featured filter to be forwarded")
	}
}

func TestProjectService_List_FeaturedNewestFirst(t *testing.T) {
	repo := newStubProjectRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.byID["a"] = &domain.Project{ID: "a", Featured: true, CreatedAt: base}
	repo.byID["b"] = &domain.Project{ID: "b", Featured: false, CreatedAt: base.Add(time.Hour)}
	repo.byID["c"] = &domain.Project{ID: "c", Featured: true, CreatedAt: base.Add(2 * time.Hour)}
	svc := newTestProjectService(repo)

	projects, err := svc.ListProjects(context.Background(), true)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 2 || projects[0].ID != "c" || projects[1].ID != "a" {
		t.Fatalf("unexpected order: %+v", projects)
	}
}

func TestProjectService_List_RepoError(t *testing.T) {
	repo := newStubProjectRepo()
	repo.listErr = errors.New("boom")
	svc := newTestProjectService(repo)

	if _, err := svc.ListProjects(context.Background(), false); !errors.Is(err, repo.listErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	svc := newTestProjectService(newStubProjectRepo())

	if _, err := svc.GetProject(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateProject / DeleteProject ownership
// ---------------------------------------------------------------------------

func seedOwned(repo *stubProjectRepo) string {
	repo.byID["p1"] = &domain.Project{ID: "p1", Title: "old", UserID: owner.ID}
	return "p1"
}

func TestProjectService_Update_Owner(t *testing.T) {
	repo := newStubProjectRepo()
	id := seedOwned(repo)
	svc := newTestProjectService(repo)

	p, err := svc.UpdateProject(context.Background(), owner, id, ports.ProjectInput{Title: "new"})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if p.Title != "new" || p.UserID != owner.ID {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestProjectService_Update_Stranger(t *testing.T) {
	repo := newStubProjectRepo()
	id := seedOwned(repo)
	svc := newTestProjectService(repo)

	_, err := svc.UpdateProject(context.Background(), stranger, id, ports.ProjectInput{Title: "hijack"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.byID[id].Title != "old" {
		t.Fatalf("project must not be modified")
	}
}

func TestProjectService_Delete_Admin(t *testing.T) {
	repo := newStubProjectRepo()
	id := seedOwned(repo)
	svc := newTestProjectService(repo)

	if err := svc.DeleteProject(context.Background(), admin, id); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Fatalf("expected %s deleted, got %v", id, repo.deleted)
	}
}

func TestProjectService_Delete_Missing(t *testing.T) {
	svc := newTestProjectService(newStubProjectRepo())

	if err := svc.DeleteProject(context.Background(), admin, "nope"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
