package favorites

import "context"

// Repository persists one favorites set per identity email.
//
// Two implementations exist: Redis (default) and Postgres (legacy
// installations that keep favorites next to accounts). The active one is
// selected at startup by configuration.
type Repository interface {
	// Load returns the persisted set for an email, empty when nothing is
	// stored. Malformed payloads degrade to an empty set.
	Load(ctx context.Context, email string) (*Set, error)

	// Save overwrites the persisted set for an email.
	Save(ctx context.Context, email string, s *Set) error

	// Clear removes the persisted set for an email.
	Clear(ctx context.Context, email string) error
}
