package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/devportfolio/portfolio/pkg/sdk"
)

// ErrNoSession is returned by operations that need a token when none is held.
// No request is sent.
var ErrNoSession = errors.New("store: no session token")

const (
	msgNoToken       = "Not authorized, no token"
	msgFetchProjects = "Failed to fetch projects"
	msgFetchProject  = "Failed to fetch project"
	msgCreateProject = "Failed to create project"
	msgUpdateProject = "Failed to update project"
	msgDeleteProject = "Failed to delete project"
	msgFetchUsers    = "Failed to fetch users"
	msgLogin         = "Login failed"
	msgRegister      = "Registration failed"
)

// Store holds State. Create one with New; the zero value is not usable.
type Store struct {
	api *sdk.Client
	log zerolog.Logger

	mu    sync.Mutex
	state State
	subs  map[int]func(State)
	next  int

	// notifyMu serialises subscriber delivery so snapshots arrive in
	// dispatch order. Acquired while mu is held, released after delivery.
	notifyMu sync.Mutex

	flight singleflight.Group
}

type Option func(*Store)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

func New(api *sdk.Client, opts ...Option) *Store {
	s := &Store{
		api:   api,
		log:   zerolog.Nop(),
		state: InitialState(),
		subs:  make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new snapshot. fn must not call
// Dispatch synchronously. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Dispatch applies a and notifies subscribers.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.notifyMu.Lock()
	s.mu.Unlock()

	defer s.notifyMu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *Store) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Session.Data.Token
}

// fail records err on slice and returns it.
func (s *Store) fail(slice SliceName, err error, fallback string) error {
	msg := sdk.ErrorMessage(err, fallback)
	s.log.Debug().Err(err).Str("slice", string(slice)).Msg(msg)
	s.Dispatch(FetchFailed{Slice: slice, Message: msg})
	return err
}

// FetchProjects loads the project list. A call made while a list fetch is in
// flight joins it: no second request is sent and nothing extra is dispatched.
func (s *Store) FetchProjects(ctx context.Context, featured bool) error {
	_, err, _ := s.flight.Do(string(SliceProjects), func() (any, error) {
		s.Dispatch(FetchStarted{Slice: SliceProjects})

		projects, err := s.api.ListProjects(ctx, featured)
		if err != nil {
			return nil, s.fail(SliceProjects, err, msgFetchProjects)
		}
		s.Dispatch(ProjectsLoaded{Projects: projects})
		return nil, nil
	})
	return err
}

// FetchProjectByID loads one project into CurrentProject. Concurrent calls
// for the same id share one request; the project list is never touched.
func (s *Store) FetchProjectByID(ctx context.Context, id string) error {
	_, err, _ := s.flight.Do(string(SliceCurrentProject)+":"+id, func() (any, error) {
		s.Dispatch(FetchStarted{Slice: SliceCurrentProject})

		project, err := s.api.GetProject(ctx, id)
		if err != nil {
			return nil, s.fail(SliceCurrentProject, err, msgFetchProject)
		}
		s.Dispatch(ProjectLoaded{Project: project})
		return nil, nil
	})
	return err
}

// CreateProject creates a project with the session token and merges the
// server's copy into the list.
func (s *Store) CreateProject(ctx context.Context, in sdk.ProjectInput) (*sdk.Project, error) {
	token := s.token()
	if token == "" {
		s.Dispatch(FetchFailed{Slice: SliceProjects, Message: msgNoToken})
		return nil, ErrNoSession
	}

	s.Dispatch(FetchStarted{Slice: SliceProjects})
	project, err := s.api.WithToken(token).CreateProject(ctx, in)
	if err != nil {
		return nil, s.fail(SliceProjects, err, msgCreateProject)
	}
	s.Dispatch(ProjectSaved{Project: *project})
	return project, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, in sdk.ProjectInput) (*sdk.Project, error) {
	token := s.token()
	if token == "" {
		s.Dispatch(FetchFailed{Slice: SliceProjects, Message: msgNoToken})
		return nil, ErrNoSession
	}

	s.Dispatch(FetchStarted{Slice: SliceProjects})
	project, err := s.api.WithToken(token).UpdateProject(ctx, id, in)
	if err != nil {
		return nil, s.fail(SliceProjects, err, msgUpdateProject)
	}
	s.Dispatch(ProjectSaved{Project: *project})
	return project, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	token := s.token()
	if token == "" {
		s.Dispatch(FetchFailed{Slice: SliceProjects, Message: msgNoToken})
		return ErrNoSession
	}

	s.Dispatch(FetchStarted{Slice: SliceProjects})
	if err := s.api.WithToken(token).DeleteProject(ctx, id); err != nil {
		return s.fail(SliceProjects, err, msgDeleteProject)
	}
	s.Dispatch(ProjectRemoved{ID: id})
	return nil
}

// FetchUsers loads the user directory. Requires an administrator session.
func (s *Store) FetchUsers(ctx context.Context) error {
	token := s.token()
	if token == "" {
		s.Dispatch(FetchFailed{Slice: SliceUsers, Message: msgNoToken})
		return ErrNoSession
	}

	_, err, _ := s.flight.Do(string(SliceUsers), func() (any, error) {
		s.Dispatch(FetchStarted{Slice: SliceUsers})

		users, err := s.api.WithToken(token).ListUsers(ctx)
		if err != nil {
			return nil, s.fail(SliceUsers, err, msgFetchUsers)
		}
		s.Dispatch(UsersLoaded{Users: users})
		return nil, nil
	})
	return err
}

func (s *Store) Login(ctx context.Context, email, password string) (Session, error) {
	s.Dispatch(FetchStarted{Slice: SliceSession})
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return Session{}, s.fail(SliceSession, err, msgLogin)
	}
	session := Session{User: res.User, Token: res.Token}
	s.Dispatch(SessionStarted{Session: session})
	return session, nil
}

func (s *Store) Register(ctx context.Context, in sdk.RegisterInput) (Session, error) {
	s.Dispatch(FetchStarted{Slice: SliceSession})
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return Session{}, s.fail(SliceSession, err, msgRegister)
	}
	session := Session{User: res.User, Token: res.Token}
	s.Dispatch(SessionStarted{Session: session})
	return session, nil
}

// Hydrate restores a previously persisted session without a request.
func (s *Store) Hydrate(session Session) { s.Dispatch(SessionStarted{Session: session}) }

// Logout forgets the session locally. It sends nothing to the server.
func (s *Store) Logout() { s.Dispatch(SessionCleared{}) }

func (s *Store) ClearCurrentProject() { s.Dispatch(ClearCurrentProject{}) }
func (s *Store) ClearError(slice SliceName) { s.Dispatch(ClearError{Slice: slice}) }

func (s *Store) ToggleTheme() { s.Dispatch(ThemeToggled{}) }
func (s *Store) SetTheme(t Theme) { s.Dispatch(ThemeSet{Theme: t}) }
func (s *Store) ToggleSidebar() { s.Dispatch(SidebarToggled{}) }
func (s *Store) SetSidebarOpen(open bool) { s.Dispatch(SidebarSet{Open: open}) }
func (s *Store) CloseModal() { s.Dispatch(ModalClosed{}) }
func (s *Store) HideToast() { s.Dispatch(ToastHidden{}) }

func (s *Store) OpenModal(modalType string, props map[string]any) {
	s.Dispatch(ModalOpened{Type: modalType, Props: props})
}

func (s *Store) ShowToast(message string, severity Severity) {
	s.Dispatch(ToastShown{Message: message, Severity: severity})
}
