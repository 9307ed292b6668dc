// Package store mirrors server resources in local state.
//
// Every change goes through Dispatch, which applies the pure Reduce function
// under the store lock and then notifies subscribers with the new snapshot.
// Async operations (FetchProjects, CreateProject, ...) drive a slice through
// idle → loading → success|error and never leave it in two phases at once.
//
// Snapshots returned by State and passed to subscribers share backing arrays
// with the store and must be treated as read-only.
package store

import "github.com/devportfolio/portfolio/pkg/sdk"

// Phase is the lifecycle position of a Slice.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Slice is one independently tracked resource. Err is empty unless Phase is
// PhaseError, and on error Data is exactly what it was before the request.
type Slice[T any] struct {
	Data  T
	Phase Phase
	Err   string
}

func (s Slice[T]) Loading() bool { return s.Phase == PhaseLoading }

// SliceName identifies a Slice in actions.
type SliceName string

const (
	SliceProjects       SliceName = "projects"
	SliceCurrentProject SliceName = "currentProject"
	SliceUsers          SliceName = "users"
	SliceSession        SliceName = "session"
)

// Session is the signed-in identity and its bearer token.
type Session struct {
	User  *sdk.User
	Token string
}

func (s Session) Authenticated() bool { return s.Token != "" }

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type Modal struct {
	Type  string
	Props map[string]any
}

type Toast struct {
	Show     bool
	Message  string
	Severity Severity
}

// UI is ephemeral presentation state. It is only ever changed synchronously.
type UI struct {
	Theme       Theme
	SidebarOpen bool
	Modal       *Modal
	Toast       Toast
}

type State struct {
	Projects       Slice[[]sdk.Project]
	CurrentProject Slice[*sdk.Project]
	Users          Slice[[]sdk.User]
	Session        Slice[Session]
	UI             UI
}

// InitialState is the state of a fresh store.
func InitialState() State {
	return State{
		Projects: Slice[[]sdk.Project]{Data: []sdk.Project{}},
		Users:    Slice[[]sdk.User]{Data: []sdk.User{}},
		UI: UI{
			Theme: ThemeLight,
			Toast: Toast{Severity: SeverityInfo},
		},
	}
}
