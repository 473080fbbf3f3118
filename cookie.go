package authform

import (
	"log/slog"

	"github.com/avolkov/authform/session"
)

// checkCookie attempts silent reauthentication from the named cookie.
// It is skipped entirely while the session carries the logout flag, so a
// user who just logged out is not immediately logged back in. Malformed,
// tampered, or expired tokens are deleted and treated as absent.
func (a *Authenticator) checkCookie(state *session.State, jar CookieJar) bool {
	if state.LoggedOut {
		return false
	}

	token, ok := jar.Get(a.config.Cookie.Name)
	if !ok || token == "" {
		return false
	}

	claims, err := a.tokens.Parse(token)
	if err != nil {
		jar.Delete(a.config.Cookie.Name)
		a.logger.Debug("reauthentication cookie rejected",
			slog.String("error", err.Error()),
		)
		return false
	}

	state.Grant(claims.Name, claims.Username)
	a.metrics.Inc(MetricCookieReauth)
	return true
}

// issueCookie signs a fresh token for the user and writes it to the jar.
func (a *Authenticator) issueCookie(jar CookieJar, name, username string) error {
	token, expires, err := a.tokens.Issue(name, username, a.now())
	if err != nil {
		return err
	}
	jar.Set(a.config.Cookie.Name, token, expires)
	return nil
}
