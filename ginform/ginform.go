// Package ginform adapts authform to gin hosts: a CookieJar over gin's
// request/response cookies, session-state persistence via
// gin-contrib/sessions, and form binding helpers for the widget inputs.
package ginform

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/avolkov/authform"
	"github.com/avolkov/authform/session"
)

// Session keys used for the persisted state record.
const (
	keyName      = "authform.name"
	keyUsername  = "authform.username"
	keyStatus    = "authform.status"
	keyLoggedOut = "authform.logged_out"
)

// Jar implements authform.CookieJar over one gin request/response pair.
// A Jar is request-scoped; build a fresh one per handler invocation.
type Jar struct {
	c *gin.Context

	// Cookie attributes applied on Set and Delete.
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
}

// NewJar returns a Jar with HttpOnly cookies on path "/".
func NewJar(c *gin.Context) *Jar {
	return &Jar{c: c, Path: "/", HTTPOnly: true}
}

// Get reads the named cookie from the request.
func (j *Jar) Get(name string) (string, bool) {
	v, err := j.c.Cookie(name)
	if err != nil {
		return "", false
	}
	return v, true
}

// Set writes the named cookie to the response, expiring at expires.
func (j *Jar) Set(name, value string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	j.c.SetCookie(name, value, maxAge, j.Path, j.Domain, j.Secure, j.HTTPOnly)
}

// Delete removes the named cookie from the client.
func (j *Jar) Delete(name string) {
	j.c.SetCookie(name, "", -1, j.Path, j.Domain, j.Secure, j.HTTPOnly)
}

// LoadState restores the session state record from the gin session, or
// returns a fresh one for first-time visitors. The route must be behind
// the sessions.Sessions middleware.
func LoadState(c *gin.Context) *session.State {
	s := sessions.Default(c)
	st := session.NewState()

	if v, ok := s.Get(keyName).(string); ok {
		st.Name = v
	}
	if v, ok := s.Get(keyUsername).(string); ok {
		st.Username = v
	}
	if v, ok := s.Get(keyStatus).(int); ok {
		st.Status = session.Status(v)
	}
	if v, ok := s.Get(keyLoggedOut).(bool); ok {
		st.LoggedOut = v
	}
	return st
}

// SaveState writes the state record back into the gin session.
func SaveState(c *gin.Context, st *session.State) error {
	s := sessions.Default(c)
	s.Set(keyName, st.Name)
	s.Set(keyUsername, st.Username)
	s.Set(keyStatus, int(st.Status))
	s.Set(keyLoggedOut, st.LoggedOut)
	return s.Save()
}

// BindLoginForm reads the login widget's fields from a POSTed form.
func BindLoginForm(c *gin.Context) authform.LoginForm {
	return authform.LoginForm{
		Username:  c.PostForm("username"),
		Password:  c.PostForm("password"),
		Submitted: true,
	}
}

// BindRegisterForm reads the registration widget's fields from a POSTed form.
func BindRegisterForm(c *gin.Context) authform.RegisterForm {
	return authform.RegisterForm{
		Name:           c.PostForm("name"),
		Username:       c.PostForm("username"),
		Email:          c.PostForm("email"),
		Password:       c.PostForm("password"),
		PasswordRepeat: c.PostForm("password_repeat"),
	}
}

// BindResetPasswordForm reads the password-reset widget's fields from a
// POSTed form.
func BindResetPasswordForm(c *gin.Context) authform.ResetPasswordForm {
	return authform.ResetPasswordForm{
		Username:          c.PostForm("username"),
		CurrentPassword:   c.PostForm("current_password"),
		NewPassword:       c.PostForm("new_password"),
		NewPasswordRepeat: c.PostForm("new_password_repeat"),
	}
}

// BindForgotPasswordForm reads the forgotten-password widget's field from a
// POSTed form.
func BindForgotPasswordForm(c *gin.Context) authform.ForgotPasswordForm {
	return authform.ForgotPasswordForm{
		Username: c.PostForm("username"),
	}
}
