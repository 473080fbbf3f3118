package authform

import "errors"

var (
	// ErrInvalidLocation is returned when a widget is asked to render
	// somewhere other than the two recognized placements.
	ErrInvalidLocation = errors.New("location must be one of 'main' or 'sidebar'")
	// ErrSessionRequired is returned when a widget is called without a
	// session state record.
	ErrSessionRequired = errors.New("session state required")
	// ErrCookieJarRequired is returned when a cookie-touching widget is
	// called without a cookie jar.
	ErrCookieJarRequired = errors.New("cookie jar required")
	// ErrPreauthorizedRequired is returned when registration is invoked
	// with preauthorization enforcement but no preauthorized list was
	// supplied at construction.
	ErrPreauthorizedRequired = errors.New("preauthorized email list required")
	// ErrNotReady is returned when an Authenticator method is called on a
	// nil or incompletely built receiver.
	ErrNotReady = errors.New("authenticator not initialized")
)
