package session

// Status is the tri-state authentication status of a host session.
//
// The zero value is StatusUnset: the user has not attempted to log in yet.
// The distinction between StatusUnset and StatusDenied is what lets a host
// render "please enter your credentials" for the former and "incorrect
// username or password" for the latter.
type Status int8

const (
	// StatusUnset means no login attempt has been made in this session.
	StatusUnset Status = iota
	// StatusDenied means the last submitted credentials were rejected.
	StatusDenied
	// StatusGranted means the session is authenticated.
	StatusGranted
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusDenied:
		return "denied"
	case StatusGranted:
		return "granted"
	default:
		return "unset"
	}
}

// State is the mutable authentication record of a single host session.
// It is created with the host session and destroyed with it. State is not
// safe for concurrent use; a host session is single-threaded by contract.
type State struct {
	// Name is the display name of the authenticated user, empty otherwise.
	Name string
	// Username is the lowercased username of the current (or attempted) user.
	Username string
	// Status is the tri-state authentication status.
	Status Status
	// LoggedOut suppresses silent cookie reauthentication after an explicit
	// logout, until the next submitted login.
	LoggedOut bool
}

// NewState returns an empty, unauthenticated state.
func NewState() *State {
	return &State{}
}

// Grant marks the session authenticated as the given user and clears the
// logout flag.
func (s *State) Grant(name, username string) {
	s.Name = name
	s.Username = username
	s.Status = StatusGranted
	s.LoggedOut = false
}

// Deny records a failed credential check. The attempted username is kept so
// the host can re-render the form with it.
func (s *State) Deny(username string) {
	s.Name = ""
	s.Username = username
	s.Status = StatusDenied
}

// Reset clears the session back to unauthenticated and raises the logout
// flag. Used by the logout widget.
func (s *State) Reset() {
	s.Name = ""
	s.Username = ""
	s.Status = StatusUnset
	s.LoggedOut = true
}

// Authenticated reports whether the session is currently authenticated.
func (s *State) Authenticated() bool {
	return s != nil && s.Status == StatusGranted
}
