// Package store holds the in-memory credential and preauthorization state
// behind the authform widgets.
//
// Both stores guard their maps with an RWMutex so that an embedding
// application serving several host sessions from one Authenticator cannot
// corrupt them. Persistence is explicitly out of scope: callers seed the
// stores at construction and may snapshot them for their own storage.
package store
