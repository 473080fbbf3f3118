package authform

import (
	"log/slog"

	"github.com/avolkov/authform/internal/store"
	"github.com/avolkov/authform/session"
)

// Login drives the login widget for one render of the host page.
//
// If the session is already authenticated the call is a no-op. Otherwise it
// first attempts silent reauthentication from the cookie, then, when the
// form was submitted, verifies the supplied credentials. Success issues a
// fresh cookie and grants the session; failure denies it. A render without
// a submission leaves the session's status untouched, so hosts can tell
// "no attempt yet" apart from "wrong credentials".
func (a *Authenticator) Login(state *session.State, jar CookieJar, form LoginForm, loc Location) (LoginOutcome, error) {
	if err := a.guard(loc); err != nil {
		return LoginOutcome{}, err
	}
	if state == nil {
		return LoginOutcome{}, ErrSessionRequired
	}
	if jar == nil {
		return LoginOutcome{}, ErrCookieJarRequired
	}

	if state.Authenticated() {
		return a.loginOutcome(state, false), nil
	}

	if a.checkCookie(state, jar) {
		a.logger.Info("login via cookie",
			slog.String("username", state.Username),
		)
		return a.loginOutcome(state, true), nil
	}

	if !form.Submitted {
		return a.loginOutcome(state, false), nil
	}

	rec, ok := a.checkCredentials(form.Username, form.Password)
	if !ok {
		state.Deny(form.Username)
		a.metrics.Inc(MetricLoginFailure)
		a.logger.Info("login denied",
			slog.String("username", form.Username),
		)
		return a.loginOutcome(state, false), nil
	}

	state.Grant(rec.Name, store.Normalize(form.Username))
	if err := a.issueCookie(jar, rec.Name, state.Username); err != nil {
		return LoginOutcome{}, err
	}
	a.metrics.Inc(MetricLoginSuccess)
	a.logger.Info("login granted",
		slog.String("username", state.Username),
	)
	return a.loginOutcome(state, false), nil
}

func (a *Authenticator) loginOutcome(state *session.State, fromCookie bool) LoginOutcome {
	return LoginOutcome{
		Status:     state.Status,
		Name:       state.Name,
		Username:   state.Username,
		FromCookie: fromCookie,
	}
}
