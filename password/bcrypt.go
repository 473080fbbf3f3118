package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates beyond 72 bytes; reject instead.
const maxPasswordBytes = 72

// Cost bounds, re-exported for callers tuning Config.Cost.
const (
	MinCost     = bcrypt.MinCost
	DefaultCost = bcrypt.DefaultCost
)

var (
	// ErrEmptyPassword is returned when an empty password is hashed.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned for passwords over 72 bytes.
	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// Config holds bcrypt hashing parameters.
type Config struct {
	// Cost is the bcrypt cost factor. Zero selects bcrypt.DefaultCost.
	Cost int
}

// Hasher hashes and verifies passwords. Safe for concurrent use.
type Hasher struct {
	cost int
}

// NewBcrypt validates cfg and returns a Hasher.
func NewBcrypt(cfg Config) (*Hasher, error) {
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.New("bcrypt cost out of range")
	}
	return &Hasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored bcrypt hash.
// A mismatch is (false, nil); an error means the hash could not be checked
// at all (malformed hash, unsupported version).
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
