package shell

import "mvp90terminal/internal/intel"

// State is the frame state of one session.
type State struct {
	Authenticated bool       `json:"authenticated"`
	CurrentModule string     `json:"currentModule"`
	Role          intel.Role `json:"role"`
}

// NewState is the frame before login.
func NewState() State {
	return State{CurrentModule: ModuleStartupFeed, Role: intel.RoleViewer}
}

// SignIn marks the session authenticated with role.
func (s *State) SignIn(role intel.Role) {
	s.Authenticated = true
	s.Role = role
}

// SelectModule stores key as is. Unknown keys are allowed and render the
// placeholder pane.
func (s *State) SelectModule(key string) {
	s.CurrentModule = key
}

// Logout clears authentication and drops the role back to Viewer.
func (s *State) Logout() {
	s.Authenticated = false
	s.Role = intel.RoleViewer
}

// Frame is the rendered shell.
type Frame struct {
	State       State        `json:"state"`
	Header      Header       `json:"header"`
	Module      *Module      `json:"module,omitempty"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`
	Modules     []Module     `json:"modules"`
}

// Frame renders the shell around the current module.
func (s State) Frame() Frame {
	f := Frame{State: s, Header: HeaderFor(s.CurrentModule), Modules: Modules}
	if m, ok := LookupModule(s.CurrentModule); ok {
		f.Module = &m
	} else {
		p := DefaultPlaceholder
		f.Placeholder = &p
	}
	return f
}
