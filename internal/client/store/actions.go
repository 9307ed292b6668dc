package store

import "github.com/devportfolio/portfolio/pkg/sdk"

// Action is a state transition. The set is closed; Reduce handles every
// implementation.
type Action interface {
	action()
}

type (
	// FetchStarted moves a slice to loading and clears its error.
	FetchStarted struct{ Slice SliceName }
	// FetchFailed moves a slice to error, keeping its data untouched.
	FetchFailed struct {
		Slice   SliceName
		Message string
	}
	// ClearError resets an errored slice to idle.
	ClearError struct{ Slice SliceName }

	// ProjectsLoaded replaces the project list, keeping server order.
	ProjectsLoaded struct{ Projects []sdk.Project }
	ProjectLoaded  struct{ Project *sdk.Project }
	// ProjectSaved upserts a project into the list by id.
	ProjectSaved        struct{ Project sdk.Project }
	ProjectRemoved      struct{ ID string }
	ClearCurrentProject struct{}

	UsersLoaded struct{ Users []sdk.User }

	SessionStarted struct{ Session Session }
	SessionCleared struct{}

	ThemeToggled   struct{}
	ThemeSet       struct{ Theme Theme }
	SidebarToggled struct{}
	SidebarSet     struct{ Open bool }
	ModalOpened    struct {
		Type  string
		Props map[string]any
	}
	ModalClosed struct{}
	ToastShown  struct {
		Message  string
		Severity Severity
	}
	ToastHidden struct{}
)

func (FetchStarted) action() {}
func (FetchFailed) action() {}
func (ClearError) action() {}
func (ProjectsLoaded) action() {}
func (ProjectLoaded) action() {}
func (ProjectSaved) action() {}
func (ProjectRemoved) action() {}
func (ClearCurrentProject) action() {}
func (UsersLoaded) action() {}
func (SessionStarted) action() {}
func (SessionCleared) action() {}
func (ThemeToggled) action() {}
func (ThemeSet) action() {}
func (SidebarToggled) action() {}
func (SidebarSet) action() {}
func (ModalOpened) action() {}
func (ModalClosed) action() {}
func (ToastShown) action() {}
func (ToastHidden) action() {}
