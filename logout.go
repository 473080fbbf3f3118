package authform

import (
	"log/slog"

	"github.com/avolkov/authform/session"
)

// Logout handles the logout button. When clicked is false nothing happens.
// Otherwise the reauthentication cookie is deleted and the session is reset
// to unauthenticated with its logout flag raised, which suppresses silent
// cookie reauthentication until the next explicit login.
func (a *Authenticator) Logout(state *session.State, jar CookieJar, clicked bool, loc Location) error {
	if err := a.guard(loc); err != nil {
		return err
	}
	if state == nil {
		return ErrSessionRequired
	}
	if jar == nil {
		return ErrCookieJarRequired
	}

	if !clicked {
		return nil
	}

	username := state.Username
	jar.Delete(a.config.Cookie.Name)
	state.Reset()
	a.metrics.Inc(MetricLogout)
	a.logger.Info("logout",
		slog.String("username", username),
	)
	return nil
}
