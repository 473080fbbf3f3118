package authform

import (
	"testing"
	"time"
)

func TestBuilderValidation(t *testing.T) {
	creds := map[string]UserRecord{"jdoe": {Name: "Jane Doe"}}

	tests := []struct {
		name  string
		build func() (*Authenticator, error)
	}{
		{"missing credentials", func() (*Authenticator, error) {
			return New().WithCookie("c", []byte("k"), 30).Build()
		}},
		{"missing cookie name", func() (*Authenticator, error) {
			return New().WithCredentials(creds).WithCookie("", []byte("k"), 30).Build()
		}},
		{"missing signing key", func() (*Authenticator, error) {
			return New().WithCredentials(creds).WithCookie("c", nil, 30).Build()
		}},
		{"non-positive expiry", func() (*Authenticator, error) {
			return New().WithCredentials(creds).WithCookie("c", []byte("k"), 0).Build()
		}},
		{"excessive leeway", func() (*Authenticator, error) {
			cfg := DefaultConfig()
			cfg.Cookie = CookieConfig{Name: "c", Key: []byte("k"), ExpiryDays: 30}
			cfg.Token.Leeway = 5 * time.Minute
			return New().WithConfig(cfg).WithCredentials(creds).Build()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build(); err == nil {
				t.Fatal("Build succeeded, want error")
			}
		})
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().
		WithCredentials(map[string]UserRecord{"jdoe": {Name: "Jane Doe"}}).
		WithCookie("c", []byte("0123456789abcdef"), 30)

	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second Build succeeded, want error")
	}
}

func TestBuilderCopiesCredentials(t *testing.T) {
	creds := map[string]UserRecord{"JDoe": {Name: "Jane Doe", Email: "jane@example.com"}}

	a, err := New().
		WithCredentials(creds).
		WithCookie("c", []byte("0123456789abcdef"), 30).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	creds["JDoe"] = UserRecord{Name: "Mallory"}

	snap := a.Credentials()
	if snap["jdoe"].Name != "Jane Doe" {
		t.Fatal("mutating the seed map leaked into the store")
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	a, err := New().
		WithCredentials(map[string]UserRecord{"jdoe": {Name: "Jane Doe"}}).
		WithCookie("c", []byte("0123456789abcdef"), 30).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.metrics.Enabled() {
		t.Fatal("metrics enabled without opt-in")
	}
	a.metrics.Inc(MetricLoginSuccess)
	if got := a.MetricsSnapshot().Counters[MetricLoginSuccess]; got != 0 {
		t.Fatalf("disabled counter recorded %d", got)
	}
}

func TestNilAuthenticatorGuards(t *testing.T) {
	var a *Authenticator

	if _, err := a.RegisterUser(RegisterForm{}, LocationMain, false); err != ErrNotReady {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	if a.Credentials() != nil {
		t.Fatal("nil authenticator returned credentials")
	}
}
