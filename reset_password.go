package authform

import (
	"log/slog"

	"github.com/avolkov/authform/internal/store"
)

// ResetPassword handles one submission of the password-reset widget. The
// current credentials must verify before the new password is considered;
// the stored hash changes only when the new password is non-empty and
// matches its confirmation.
func (a *Authenticator) ResetPassword(form ResetPasswordForm, loc Location) (ResetStatus, error) {
	if err := a.guard(loc); err != nil {
		return 0, err
	}

	if _, ok := a.checkCredentials(form.Username, form.CurrentPassword); !ok {
		a.metrics.Inc(MetricResetRejected)
		return ResetBadCredentials, nil
	}
	if form.NewPassword == "" {
		a.metrics.Inc(MetricResetRejected)
		return ResetEmptyPassword, nil
	}
	if form.NewPassword != form.NewPasswordRepeat {
		a.metrics.Inc(MetricResetRejected)
		return ResetMismatch, nil
	}

	hash, err := a.hasher.Hash(form.NewPassword)
	if err != nil {
		return 0, err
	}
	a.creds.UpdatePasswordHash(form.Username, hash)

	a.metrics.Inc(MetricResetSuccess)
	a.logger.Info("password reset",
		slog.String("username", store.Normalize(form.Username)),
	)
	return ResetOK, nil
}
