package authform

import (
	"log/slog"

	"github.com/avolkov/authform/internal/store"
)

// RegisterUser handles one submission of the registration widget. The new
// user is written to the credentials store but not authenticated; the host
// directs them to the login widget afterwards.
//
// Validation runs in a fixed order: missing fields, duplicate username,
// password confirmation, then the preauthorization gate. The preauthorized
// email is consumed only when every other check has passed, so a rejected
// submission never uses up an invitation.
func (a *Authenticator) RegisterUser(form RegisterForm, loc Location, preauthRequired bool) (RegisterStatus, error) {
	if err := a.guard(loc); err != nil {
		return 0, err
	}
	if preauthRequired && a.preauth == nil {
		return 0, ErrPreauthorizedRequired
	}

	if form.Name == "" || form.Username == "" || form.Email == "" || form.Password == "" {
		a.metrics.Inc(MetricRegisterRejected)
		return RegisterMissingFields, nil
	}
	if a.creds.Has(form.Username) {
		a.metrics.Inc(MetricRegisterRejected)
		return RegisterUsernameTaken, nil
	}
	if form.Password != form.PasswordRepeat {
		a.metrics.Inc(MetricRegisterRejected)
		return RegisterPasswordMismatch, nil
	}
	if preauthRequired && !a.preauth.Contains(form.Email) {
		a.metrics.Inc(MetricRegisterRejected)
		return RegisterNotPreauthorized, nil
	}

	hash, err := a.hasher.Hash(form.Password)
	if err != nil {
		return 0, err
	}

	a.creds.Put(form.Username, store.Record{
		Name:         form.Name,
		PasswordHash: hash,
		Email:        form.Email,
	})
	if preauthRequired {
		a.preauth.Consume(form.Email)
	}

	a.metrics.Inc(MetricRegisterSuccess)
	a.logger.Info("user registered",
		slog.String("username", store.Normalize(form.Username)),
	)
	return RegisterOK, nil
}
