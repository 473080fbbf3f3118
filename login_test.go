package authform

import (
	"testing"
	"time"

	"github.com/avolkov/authform/session"
)

func TestLoginSuccessSetsCookieAndGrantsSession(t *testing.T) {
	a := newTestAuth(t)
	state := session.NewState()
	jar := newFakeJar()

	out, err := a.Login(state, jar, LoginForm{
		Username:  "JDoe",
		Password:  testPassword,
		Submitted: true,
	}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if out.Status != session.StatusGranted {
		t.Fatalf("status = %v, want granted", out.Status)
	}
	if out.Name != testName || out.Username != testUsername {
		t.Fatalf("identity = %q/%q, want %q/%q", out.Name, out.Username, testName, testUsername)
	}
	if !state.Authenticated() {
		t.Fatal("session not authenticated after successful login")
	}
	if _, ok := jar.Get(testCookieName); !ok {
		t.Fatal("reauthentication cookie not set")
	}
	if got := a.MetricsSnapshot().Counters[MetricLoginSuccess]; got != 1 {
		t.Fatalf("login success counter = %d, want 1", got)
	}
}

func TestLoginWrongPasswordDeniesSession(t *testing.T) {
	a := newTestAuth(t)
	state := session.NewState()
	jar := newFakeJar()

	out, err := a.Login(state, jar, LoginForm{
		Username:  testUsername,
		Password:  "wrong",
		Submitted: true,
	}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if out.Status != session.StatusDenied {
		t.Fatalf("status = %v, want denied", out.Status)
	}
	if state.Authenticated() {
		t.Fatal("session authenticated after wrong password")
	}
	if _, ok := jar.Get(testCookieName); ok {
		t.Fatal("cookie set after failed login")
	}
	if got := a.MetricsSnapshot().Counters[MetricLoginFailure]; got != 1 {
		t.Fatalf("login failure counter = %d, want 1", got)
	}
}

func TestLoginUnknownUserDeniesSameAsWrongPassword(t *testing.T) {
	a := newTestAuth(t)
	state := session.NewState()

	out, err := a.Login(state, newFakeJar(), LoginForm{
		Username:  "ghost",
		Password:  testPassword,
		Submitted: true,
	}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusDenied {
		t.Fatalf("status = %v, want denied", out.Status)
	}
}

func TestLoginWithoutSubmissionLeavesStatusUnset(t *testing.T) {
	a := newTestAuth(t)
	state := session.NewState()

	out, err := a.Login(state, newFakeJar(), LoginForm{}, LocationSidebar)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusUnset {
		t.Fatalf("status = %v, want unset", out.Status)
	}
}

func TestLoginSilentCookieReauthentication(t *testing.T) {
	a := newTestAuth(t)
	jar := newFakeJar()
	first := session.NewState()
	mustLogin(t, a, first, jar)

	// A fresh session with the same jar, as on a return visit.
	second := session.NewState()
	out, err := a.Login(second, jar, LoginForm{}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if out.Status != session.StatusGranted {
		t.Fatalf("status = %v, want granted", out.Status)
	}
	if !out.FromCookie {
		t.Fatal("expected cookie-based reauthentication")
	}
	if second.Name != testName || second.Username != testUsername {
		t.Fatalf("restored identity = %q/%q", second.Name, second.Username)
	}
	if got := a.MetricsSnapshot().Counters[MetricCookieReauth]; got != 1 {
		t.Fatalf("cookie reauth counter = %d, want 1", got)
	}
}

func TestLoginSkipsCookieAfterLogout(t *testing.T) {
	a := newTestAuth(t)
	jar := newFakeJar()
	state := session.NewState()
	mustLogin(t, a, state, jar)

	// Re-plant a cookie so only the logout flag stands between the
	// session and silent reauthentication.
	if err := a.Logout(state, jar, true, LocationMain); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := a.issueCookie(jar, testName, testUsername); err != nil {
		t.Fatalf("issueCookie: %v", err)
	}

	out, err := a.Login(state, jar, LoginForm{}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusUnset {
		t.Fatalf("status = %v, want unset (logout flag must suppress reauth)", out.Status)
	}
}

func TestLoginAlreadyAuthenticatedIsNoOp(t *testing.T) {
	a := newTestAuth(t)
	jar := newFakeJar()
	state := session.NewState()
	mustLogin(t, a, state, jar)

	out, err := a.Login(state, jar, LoginForm{
		Username:  "ghost",
		Password:  "irrelevant",
		Submitted: true,
	}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusGranted || out.Username != testUsername {
		t.Fatalf("outcome = %+v, want existing grant untouched", out)
	}
}

func TestLoginRejectsTamperedCookie(t *testing.T) {
	a := newTestAuth(t)
	jar := newFakeJar()
	jar.Set(testCookieName, "not.a.token", time.Now().Add(time.Hour))

	state := session.NewState()
	out, err := a.Login(state, jar, LoginForm{}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusUnset {
		t.Fatalf("status = %v, want unset", out.Status)
	}
	if _, ok := jar.Get(testCookieName); ok {
		t.Fatal("rejected cookie must be deleted")
	}
}

func TestLoginExpiredCookieTreatedAsAbsent(t *testing.T) {
	past := time.Now().Add(-31 * 24 * time.Hour)
	a := newTestAuth(t, withClock(func() time.Time { return past }))

	jar := newFakeJar()
	if err := a.issueCookie(jar, testName, testUsername); err != nil {
		t.Fatalf("issueCookie: %v", err)
	}

	state := session.NewState()
	out, err := a.Login(state, jar, LoginForm{}, LocationMain)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Status != session.StatusUnset {
		t.Fatalf("status = %v, want unset for expired token", out.Status)
	}
}

func TestLoginInputValidation(t *testing.T) {
	a := newTestAuth(t)

	if _, err := a.Login(session.NewState(), newFakeJar(), LoginForm{}, Location("footer")); err != ErrInvalidLocation {
		t.Fatalf("err = %v, want ErrInvalidLocation", err)
	}
	if _, err := a.Login(nil, newFakeJar(), LoginForm{}, LocationMain); err != ErrSessionRequired {
		t.Fatalf("err = %v, want ErrSessionRequired", err)
	}
	if _, err := a.Login(session.NewState(), nil, LoginForm{}, LocationMain); err != ErrCookieJarRequired {
		t.Fatalf("err = %v, want ErrCookieJarRequired", err)
	}
}
