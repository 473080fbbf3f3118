// Package authform provides session-based authentication widgets (login,
// logout, registration, password reset, forgotten-password recovery) for
// form-driven host applications, backed by an in-memory credentials map
// and a signed reauthentication cookie.
//
// The package is host-agnostic: the embedding application renders forms and
// owns cookies and session storage, then hands each widget the submitted
// form values, the host session's state record, and a [CookieJar]. Adapter
// packages (ginform, termform) supply that glue for common hosts.
//
// # Architecture boundaries
//
// authform is the public surface. It exposes [Authenticator], [Builder],
// [Config], value types, and tagged status results. Credential and
// preauthorization storage lives under internal/ and is never exported;
// token signing lives in jwt/ and hashing in password/.
//
// # What this package must NOT do
//
//   - Render UI or speak HTTP. Hosts own presentation and transport.
//   - Persist credentials. The caller seeds the map and may snapshot it.
//   - Hold per-session state internally. Session state is passed in
//     explicitly on every call.
package authform
