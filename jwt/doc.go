// Package jwt issues and verifies the signed reauthentication token stored
// in the client-side cookie.
//
// # Token format
//
// A compact HS256 JWT carrying {name, username, exp, iat, jti}. The jti is a
// random UUID so reissued tokens are distinguishable. Verification rejects
// any token whose signature does not validate under the configured key or
// whose expiry has passed; callers treat every rejection as "no cookie".
//
// # What this package must NOT do
//
//   - Read or write cookies (the host's cookie jar does that).
//   - Accept any signing algorithm other than HS256.
package jwt
