// Package session holds the per-host-session authentication status record.
//
// A [State] is created by the embedding application alongside its own session
// object (an HTTP session, a REPL connection, a UI session) and handed
// explicitly to every widget call. Nothing in this package is global: two
// concurrent host sessions own two independent State values.
//
// # Architecture boundaries
//
// This package owns the status record and its transitions. It does not parse
// tokens, touch cookies, or verify credentials; that is the root authform
// package's job.
package session
