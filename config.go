package authform

import (
	"errors"
	"time"

	"github.com/avolkov/authform/password"
)

// CookieConfig describes the reauthentication cookie.
type CookieConfig struct {
	// Name is the cookie name in the host's jar.
	Name string
	// Key signs the reauthentication token (HMAC-SHA256).
	Key []byte
	// ExpiryDays is how long issued tokens and cookies stay valid.
	ExpiryDays int
}

// PasswordConfig tunes hashing and random-password generation.
type PasswordConfig struct {
	// Cost is the bcrypt cost. Zero selects the bcrypt default.
	Cost int
	// GeneratedLength is the length of passwords produced by the
	// forgotten-password flow. Zero selects the package default.
	GeneratedLength int
}

// TokenConfig tunes token verification.
type TokenConfig struct {
	// Leeway tolerates clock skew when checking token expiry.
	// Zero means no leeway. Capped at two minutes.
	Leeway time.Duration
}

// MetricsConfig controls the internal counters.
type MetricsConfig struct {
	Enabled bool
}

// Config is the full configuration for an Authenticator. Obtain a baseline
// from DefaultConfig and override fields before passing it to the Builder.
// Configs are copied on Build; later mutation has no effect.
type Config struct {
	Cookie   CookieConfig
	Password PasswordConfig
	Token    TokenConfig
	Metrics  MetricsConfig
}

// DefaultConfig returns the baseline configuration. The cookie name, key,
// and expiry must still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Cookie: CookieConfig{
			ExpiryDays: 30,
		},
		Password: PasswordConfig{
			GeneratedLength: password.DefaultGeneratedLength,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Cookie.Name == "" {
		return errors.New("cookie name required")
	}
	if len(c.Cookie.Key) == 0 {
		return errors.New("cookie signing key required")
	}
	if c.Cookie.ExpiryDays <= 0 {
		return errors.New("cookie expiry days must be positive")
	}
	if c.Token.Leeway < 0 {
		return errors.New("token leeway must not be negative")
	}
	if c.Token.Leeway > 2*time.Minute {
		return errors.New("token leeway must not exceed two minutes")
	}
	if c.Password.GeneratedLength < 0 {
		return errors.New("generated password length must not be negative")
	}
	return nil
}

func cloneConfig(c Config) Config {
	out := c
	out.Cookie.Key = cloneBytes(c.Cookie.Key)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
