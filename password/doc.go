// Package password provides salted password hashing and verification on top
// of bcrypt, plus generation of random replacement passwords for the
// forgot-password flow.
//
// # Design
//
// Hashes are standard bcrypt strings; the salt is embedded in the hash, so
// storage is a single opaque column/field. Verification is constant-time
// inside bcrypt itself.
//
// # What this package must NOT do
//
//   - Persist anything. Callers own hash storage.
//   - Retain plaintext passwords beyond the call.
package password
