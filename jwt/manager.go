package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid is returned for any token that fails verification:
	// bad signature, expired, wrong algorithm, or missing identity claims.
	ErrTokenInvalid = errors.New("invalid reauthentication token")
)

// Config holds the signing key and lifetime of reauthentication tokens.
//
// Config instances are set once at construction and treated as immutable.
type Config struct {
	// Key is the HMAC signing secret. Required.
	Key []byte
	// Expiry is how long an issued token stays valid. Required, positive.
	Expiry time.Duration
	// Leeway tolerates small clock differences when validating exp.
	Leeway time.Duration
}

// Claims is the reauthentication token payload.
type Claims struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies reauthentication tokens. Safe for concurrent
// use after construction.
type Manager struct {
	config Config
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Key) == 0 {
		return nil, errors.New("signing key required")
	}
	if cfg.Expiry <= 0 {
		return nil, errors.New("invalid expiry configuration")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	return &Manager{config: cfg}, nil
}

// Issue signs a token for the given identity. The expiry is now + the
// configured lifetime; the returned time is that expiry, for use as the
// cookie's expiration.
func (m *Manager) Issue(name, username string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.config.Expiry)
	claims := Claims{
		Name:     name,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.config.Key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies a token and returns its claims. Any verification failure
// collapses to ErrTokenInvalid: the caller's contract is "valid token or no
// token", nothing in between.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.config.Leeway))
	}

	parser := jwt.NewParser(options...)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.config.Key, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Name == "" || claims.Username == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
