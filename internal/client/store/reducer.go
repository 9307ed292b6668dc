package store

import "github.com/devportfolio/portfolio/pkg/sdk"

// Reduce returns the state that results from applying a to s. It never
// mutates s: slices are rebuilt rather than edited in place, so earlier
// snapshots stay valid.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchStarted:
		return setPhase(s, a.Slice, PhaseLoading, "")
	case FetchFailed:
		return setPhase(s, a.Slice, PhaseError, a.Message)
	case ClearError:
		return clearError(s, a.Slice)

	case ProjectsLoaded:
		data := a.Projects
		if data == nil {
			data = []sdk.Project{}
		}
		s.Projects = Slice[[]sdk.Project]{Data: data, Phase: PhaseSuccess}
	case ProjectLoaded:
		s.CurrentProject = Slice[*sdk.Project]{Data: a.Project, Phase: PhaseSuccess}
	case ProjectSaved:
		s.Projects = Slice[[]sdk.Project]{Data: mergeProject(s.Projects.Data, a.Project), Phase: PhaseSuccess}
		if cur := s.CurrentProject.Data; cur != nil && cur.ID == a.Project.ID {
			p := a.Project
			s.CurrentProject.Data = &p
		}
	case ProjectRemoved:
		s.Projects = Slice[[]sdk.Project]{Data: removeProject(s.Projects.Data, a.ID), Phase: PhaseSuccess}
		if cur := s.CurrentProject.Data; cur != nil && cur.ID == a.ID {
			s.CurrentProject = Slice[*sdk.Project]{}
		}
	case ClearCurrentProject:
		s.CurrentProject = Slice[*sdk.Project]{}

	case UsersLoaded:
		data := a.Users
		if data == nil {
			data = []sdk.User{}
		}
		s.Users = Slice[[]sdk.User]{Data: data, Phase: PhaseSuccess}

	case SessionStarted:
		s.Session = Slice[Session]{Data: a.Session, Phase: PhaseSuccess}
	case SessionCleared:
		s.Session = Slice[Session]{}
		s.Users = Slice[[]sdk.User]{Data: []sdk.User{}}

	case ThemeToggled:
		if s.UI.Theme == ThemeDark {
			s.UI.Theme = ThemeLight
		} else {
			s.UI.Theme = ThemeDark
		}
	case ThemeSet:
		s.UI.Theme = a.Theme
	case SidebarToggled:
		s.UI.SidebarOpen = !s.UI.SidebarOpen
	case SidebarSet:
		s.UI.SidebarOpen = a.Open
	case ModalOpened:
		props := a.Props
		if props == nil {
			props = map[string]any{}
		}
		s.UI.Modal = &Modal{Type: a.Type, Props: props}
	case ModalClosed:
		s.UI.Modal = nil
	case ToastShown:
		s.UI.Toast = Toast{Show: true, Message: a.Message, Severity: a.Severity}
	case ToastHidden:
		s.UI.Toast.Show = false
	}
	return s
}

func setPhase(s State, name SliceName, phase Phase, msg string) State {
	switch name {
	case SliceProjects:
		s.Projects.Phase, s.Projects.Err = phase, msg
	case SliceCurrentProject:
		s.CurrentProject.Phase, s.CurrentProject.Err = phase, msg
	case SliceUsers:
		s.Users.Phase, s.Users.Err = phase, msg
	case SliceSession:
		s.Session.Phase, s.Session.Err = phase, msg
	}
	return s
}

func clearError(s State, name SliceName) State {
	var phase Phase
	switch name {
	case SliceProjects:
		phase = s.Projects.Phase
	case SliceCurrentProject:
		phase = s.CurrentProject.Phase
	case SliceUsers:
		phase = s.Users.Phase
	case SliceSession:
		phase = s.Session.Phase
	}
	if phase != PhaseError {
		return s
	}
	return setPhase(s, name, PhaseIdle, "")
}

// mergeProject replaces the element with p's id in place, or appends p.
func mergeProject(list []sdk.Project, p sdk.Project) []sdk.Project {
	out := make([]sdk.Project, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == p.ID {
			out = append(out, p)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, p)
	}
	return out
}

func removeProject(list []sdk.Project, id string) []sdk.Project {
	out := make([]sdk.Project, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
