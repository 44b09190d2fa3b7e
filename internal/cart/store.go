package cart

import "context"

// Repository persists one cart per identity email.
type Repository interface {
	// Load returns the persisted cart for an email, or an empty cart when
	// nothing is stored. Malformed payloads degrade to an empty cart.
	Load(ctx context.Context, email string) (*Cart, error)

	// Save overwrites the persisted cart for an email (last write wins).
	Save(ctx context.Context, email string, c *Cart) error

	// Clear removes the persisted cart for an email.
	Clear(ctx context.Context, email string) error
}
