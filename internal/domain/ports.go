package domain

import "context"

// StateStore persists the whole aggregate. Implementations can be a JSON
// document on disk, an in-memory map for tests, or any other backend.
//
// Load never reports absence or corruption as an error: both degrade to a
// default aggregate, observable only through diagnostics.
type StateStore interface {
	Load(ctx context.Context) (*AppState, error)
	Save(ctx context.Context, state *AppState) error
}
