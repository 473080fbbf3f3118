package authform

import (
	"log/slog"
	"time"

	"github.com/avolkov/authform/internal/store"
	"github.com/avolkov/authform/jwt"
	"github.com/avolkov/authform/password"
)

// Authenticator is the assembled widget engine. All methods are safe for
// concurrent use; per-session state is passed in explicitly on every call.
type Authenticator struct {
	config Config

	creds   *store.Credentials
	preauth *store.Preauthorized

	hasher  *password.Hasher
	tokens  *jwt.Manager
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Credentials returns a copy of the current credentials map, including any
// mutations made by registration and the password flows. Callers persist
// this snapshot however they store users.
func (a *Authenticator) Credentials() map[string]UserRecord {
	if a == nil {
		return nil
	}
	snap := a.creds.Snapshot()
	out := make(map[string]UserRecord, len(snap))
	for username, rec := range snap {
		out[username] = UserRecord{
			Name:         rec.Name,
			PasswordHash: rec.PasswordHash,
			Email:        rec.Email,
		}
	}
	return out
}

// PreauthorizedEmails returns the emails not yet consumed by registration.
// Nil when no preauthorized list was configured.
func (a *Authenticator) PreauthorizedEmails() []string {
	if a == nil || a.preauth == nil {
		return nil
	}
	return a.preauth.Snapshot()
}

// MetricsSnapshot copies the internal counters.
func (a *Authenticator) MetricsSnapshot() MetricsSnapshot {
	if a == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return a.metrics.Snapshot()
}

// checkCredentials verifies a username/password pair against the store.
// Unknown usernames and wrong passwords collapse to the same false result.
// Hash verification errors are logged and treated as a failed check.
func (a *Authenticator) checkCredentials(username, plaintext string) (store.Record, bool) {
	rec, ok := a.creds.Lookup(username)
	if !ok {
		return store.Record{}, false
	}

	match, err := a.hasher.Verify(plaintext, rec.PasswordHash)
	if err != nil {
		a.logger.Warn("password verification failed",
			slog.String("username", store.Normalize(username)),
			slog.String("error", err.Error()),
		)
		return store.Record{}, false
	}
	if !match {
		return store.Record{}, false
	}
	return rec, true
}

func (a *Authenticator) guard(loc Location) error {
	if a == nil || a.creds == nil {
		return ErrNotReady
	}
	if !loc.valid() {
		return ErrInvalidLocation
	}
	return nil
}
