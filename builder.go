package authform

import (
	"errors"
	"log/slog"
	"time"

	"github.com/avolkov/authform/internal/store"
	"github.com/avolkov/authform/jwt"
	"github.com/avolkov/authform/password"
)

// Builder assembles an Authenticator. Obtain one from New, chain the With
// methods, then call Build exactly once.
type Builder struct {
	config Config

	credentials   map[string]UserRecord
	preauthorized []string

	logger *slog.Logger
	clock  func() time.Time

	built bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithCredentials supplies the username → record map. Usernames are
// case-normalized on Build; the map is copied and never mutated.
func (b *Builder) WithCredentials(creds map[string]UserRecord) *Builder {
	b.credentials = creds
	return b
}

// WithCookie sets the reauthentication cookie name, signing key, and
// expiry horizon in days.
func (b *Builder) WithCookie(name string, key []byte, expiryDays int) *Builder {
	b.config.Cookie.Name = name
	b.config.Cookie.Key = cloneBytes(key)
	b.config.Cookie.ExpiryDays = expiryDays
	return b
}

// WithPreauthorized supplies the emails allowed to self-register.
func (b *Builder) WithPreauthorized(emails []string) *Builder {
	b.preauthorized = emails
	return b
}

// WithLogger sets the structured logger. Nil keeps logging disabled.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// WithClock overrides the time source. Intended for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithMetricsEnabled toggles the internal counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and assembles the Authenticator.
func (b *Builder) Build() (*Authenticator, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.credentials == nil {
		return nil, errors.New("credentials map required")
	}

	seed := make(map[string]store.Record, len(b.credentials))
	for username, rec := range b.credentials {
		seed[username] = store.Record{
			Name:         rec.Name,
			PasswordHash: rec.PasswordHash,
			Email:        rec.Email,
		}
	}

	hasher, err := password.NewBcrypt(password.Config{Cost: cfg.Password.Cost})
	if err != nil {
		return nil, err
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Key:    cloneBytes(cfg.Cookie.Key),
		Expiry: time.Duration(cfg.Cookie.ExpiryDays) * 24 * time.Hour,
		Leeway: cfg.Token.Leeway,
	})
	if err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	var preauth *store.Preauthorized
	if b.preauthorized != nil {
		preauth = store.NewPreauthorized(b.preauthorized)
	}

	a := &Authenticator{
		config:  cfg,
		creds:   store.NewCredentials(seed),
		preauth: preauth,
		hasher:  hasher,
		tokens:  tokens,
		metrics: NewMetrics(cfg.Metrics),
		logger:  logger,
		now:     clock,
	}

	b.built = true

	return a, nil
}
