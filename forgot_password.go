package authform

import (
	"log/slog"

	"github.com/avolkov/authform/internal/store"
	"github.com/avolkov/authform/password"
)

// ForgotPassword handles one submission of the forgotten-password widget.
// For a known username it generates a random replacement password,
// overwrites the stored hash, and returns the plaintext exactly once so
// the host can deliver it out of band. The plaintext is never stored. For
// an unknown username the store is left untouched and Found is false.
func (a *Authenticator) ForgotPassword(form ForgotPasswordForm, loc Location) (ForgotOutcome, error) {
	if err := a.guard(loc); err != nil {
		return ForgotOutcome{}, err
	}

	username := store.Normalize(form.Username)
	rec, ok := a.creds.Lookup(username)
	if !ok {
		a.metrics.Inc(MetricForgotUnknown)
		return ForgotOutcome{Username: username}, nil
	}

	length := a.config.Password.GeneratedLength
	if length <= 0 {
		length = password.DefaultGeneratedLength
	}
	plaintext, err := password.Generate(length)
	if err != nil {
		return ForgotOutcome{}, err
	}

	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		return ForgotOutcome{}, err
	}
	a.creds.UpdatePasswordHash(username, hash)

	a.metrics.Inc(MetricForgotIssued)
	a.logger.Info("replacement password issued",
		slog.String("username", username),
	)
	return ForgotOutcome{
		Found:       true,
		Username:    username,
		Email:       rec.Email,
		NewPassword: plaintext,
	}, nil
}
