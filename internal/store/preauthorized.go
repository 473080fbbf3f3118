package store

import (
	"strings"
	"sync"
)

// Preauthorized is the set of emails allowed to self-register. An email is
// consumed (removed) by the first successful registration that uses it.
type Preauthorized struct {
	mu     sync.Mutex
	emails map[string]struct{}
}

// NewPreauthorized builds the set from a list of emails. Emails are
// case-normalized. A nil or empty list yields an empty set.
func NewPreauthorized(emails []string) *Preauthorized {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if email == "" {
			continue
		}
		set[strings.ToLower(email)] = struct{}{}
	}
	return &Preauthorized{emails: set}
}

// Contains reports whether email is in the set.
func (p *Preauthorized) Contains(email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.emails[strings.ToLower(email)]
	return ok
}

// Consume removes email from the set, reporting whether it was present.
func (p *Preauthorized) Consume(email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := p.emails[key]; !ok {
		return false
	}
	delete(p.emails, key)
	return true
}

// Len returns the number of remaining preauthorized emails.
func (p *Preauthorized) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.emails)
}

// Snapshot returns the remaining emails.
func (p *Preauthorized) Snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.emails))
	for email := range p.emails {
		out = append(out, email)
	}
	return out
}
