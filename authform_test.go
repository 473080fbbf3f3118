package authform

import (
	"testing"
	"time"

	"github.com/avolkov/authform/password"
	"github.com/avolkov/authform/session"
)

type fakeCookie struct {
	value   string
	expires time.Time
}

// fakeJar is an in-memory CookieJar for tests.
type fakeJar struct {
	cookies map[string]fakeCookie
	deletes int
}

func newFakeJar() *fakeJar {
	return &fakeJar{cookies: make(map[string]fakeCookie)}
}

func (j *fakeJar) Get(name string) (string, bool) {
	c, ok := j.cookies[name]
	return c.value, ok
}

func (j *fakeJar) Set(name, value string, expires time.Time) {
	j.cookies[name] = fakeCookie{value: value, expires: expires}
}

func (j *fakeJar) Delete(name string) {
	delete(j.cookies, name)
	j.deletes++
}

const (
	testCookieName = "authform_reauth"
	testUsername   = "jdoe"
	testName       = "Jane Doe"
	testEmail      = "jane@example.com"
	testPassword   = "correct horse battery staple"
)

func testHash(t *testing.T, plaintext string) string {
	t.Helper()
	h, err := password.NewBcrypt(password.Config{Cost: password.MinCost})
	if err != nil {
		t.Fatalf("NewBcrypt: %v", err)
	}
	hash, err := h.Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	return hash
}

type authOption func(*Builder)

func withPreauthorized(emails []string) authOption {
	return func(b *Builder) { b.WithPreauthorized(emails) }
}

func withClock(now func() time.Time) authOption {
	return func(b *Builder) { b.WithClock(now) }
}

// newTestAuth builds an Authenticator seeded with one known user
// (testUsername / testPassword) and metrics enabled.
func newTestAuth(t *testing.T, opts ...authOption) *Authenticator {
	t.Helper()

	b := New().
		WithCredentials(map[string]UserRecord{
			testUsername: {
				Name:         testName,
				PasswordHash: testHash(t, testPassword),
				Email:        testEmail,
			},
		}).
		WithCookie(testCookieName, []byte("0123456789abcdef"), 30).
		WithMetricsEnabled(true)
	b.config.Password.Cost = password.MinCost

	for _, opt := range opts {
		opt(b)
	}

	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return a
}

func mustLogin(t *testing.T, a *Authenticator, state *session.State, jar *fakeJar) {
	t.Helper()
	out, err := a.Login(state, jar, LoginForm{
		Username:  testUsername,
		Password:  testPassword,
		Submitted: true,
	}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusGranted {
		t.Fatalf("login status = %v, want granted", out.Status)
	}
}
