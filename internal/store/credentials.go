package store

import (
	"strings"
	"sync"
)

// Record is one stored user: display name, password hash, email.
type Record struct {
	Name         string
	PasswordHash string
	Email        string
}

// Credentials is a case-normalized username → Record map.
// Usernames are lowercased on every ingest and lookup, so "JDoe" and
// "jdoe" are the same account. Records are never deleted.
type Credentials struct {
	mu    sync.RWMutex
	users map[string]Record
}

// NewCredentials copies seed into a fresh store, lowercasing usernames.
// A nil seed yields an empty store.
func NewCredentials(seed map[string]Record) *Credentials {
	users := make(map[string]Record, len(seed))
	for username, rec := range seed {
		users[Normalize(username)] = rec
	}
	return &Credentials{users: users}
}

// Normalize returns the canonical (lowercased) form of a username.
func Normalize(username string) string {
	return strings.ToLower(username)
}

// Lookup returns the record for username, if present.
func (c *Credentials) Lookup(username string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.users[Normalize(username)]
	return rec, ok
}

// Has reports whether username exists.
func (c *Credentials) Has(username string) bool {
	_, ok := c.Lookup(username)
	return ok
}

// Put inserts or replaces the record for username.
func (c *Credentials) Put(username string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[Normalize(username)] = rec
}

// UpdatePasswordHash overwrites the stored hash for an existing username.
// It reports false when the username is unknown, leaving the store unchanged.
func (c *Credentials) UpdatePasswordHash(username, newHash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := Normalize(username)
	rec, ok := c.users[key]
	if !ok {
		return false
	}
	rec.PasswordHash = newHash
	c.users[key] = rec
	return true
}

// Len returns the number of stored users.
func (c *Credentials) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}

// Snapshot returns a copy of the store for the caller to persist.
func (c *Credentials) Snapshot() map[string]Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Record, len(c.users))
	for username, rec := range c.users {
		out[username] = rec
	}
	return out
}
