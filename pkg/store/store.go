// Package store implements the observable entity stores at the center of the
// planner: projects, calendar events, and todos. Each store exclusively owns
// its collection, commits mutations synchronously, and then publishes the new
// full-collection snapshot to watchers in commit order. Cross-store
// consistency is explicit function calls between stores, never shared state.
package store

import "errors"

// ErrNotFound is returned when a mutation targets an id that is not in the
// collection. The store is left untouched; callers that want the source
// behavior of a silent no-op can ignore it.
var ErrNotFound = errors.New("store: not found")
