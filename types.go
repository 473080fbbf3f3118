package authform

import (
	"time"

	"github.com/avolkov/authform/session"
)

// Location names where a widget is rendered by the host.
type Location string

const (
	// LocationMain places the widget in the main body of the page.
	LocationMain Location = "main"
	// LocationSidebar places the widget in the sidebar.
	LocationSidebar Location = "sidebar"
)

func (l Location) valid() bool {
	return l == LocationMain || l == LocationSidebar
}

// UserRecord is one caller-supplied user: display name, bcrypt password
// hash, and email. Usernames live as map keys and are case-normalized on
// ingest.
type UserRecord struct {
	Name         string
	PasswordHash string
	Email        string
}

// CookieJar is the host's cookie surface. Implementations wrap whatever
// cookie mechanism the host provides (HTTP response cookies, a browser
// shim, a test fake).
//
// All three methods are best-effort and must not block.
type CookieJar interface {
	// Get returns the value of the named cookie and whether it exists.
	Get(name string) (string, bool)
	// Set writes the named cookie with the given value and expiry.
	Set(name, value string, expires time.Time)
	// Delete removes the named cookie.
	Delete(name string)
}

// LoginForm carries one submission of the login widget. Submitted is false
// while the user has not pressed the button yet, which lets Login run its
// silent cookie reauthentication on every render without treating an empty
// form as a failed attempt.
type LoginForm struct {
	Username  string
	Password  string
	Submitted bool
}

// RegisterForm carries one submission of the registration widget.
type RegisterForm struct {
	Name           string
	Username       string
	Email          string
	Password       string
	PasswordRepeat string
}

// ResetPasswordForm carries one submission of the password-reset widget.
type ResetPasswordForm struct {
	Username          string
	CurrentPassword   string
	NewPassword       string
	NewPasswordRepeat string
}

// ForgotPasswordForm carries one submission of the forgotten-password
// widget.
type ForgotPasswordForm struct {
	Username string
}

// LoginOutcome reports what Login did on this invocation.
type LoginOutcome struct {
	// Status mirrors the session's authentication status after the call.
	Status session.Status
	// Name and Username identify the authenticated user when Status is
	// StatusGranted.
	Name     string
	Username string
	// FromCookie is true when this invocation authenticated silently from
	// the reauthentication cookie rather than from submitted credentials.
	FromCookie bool
}

// ForgotOutcome reports the result of a forgotten-password request.
// When Found is true, NewPassword holds the plaintext replacement exactly
// once, for out-of-band delivery to Email. It is never stored.
type ForgotOutcome struct {
	Found       bool
	Username    string
	Email       string
	NewPassword string
}
