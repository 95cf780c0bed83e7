package seller

import "context"

// Repository defines all data access operations for the Seller domain
type Repository interface {
	// FindAll returns every seller ordered by ID
	FindAll(ctx context.Context) ([]*Seller, error)

	// FindByID retrieves a seller by ID
	// Returns nil if not found
	FindByID(ctx context.Context, id int) (*Seller, error)

	// SaveOrUpdate inserts a seller with a nil ID, assigning one, and
	// replaces the stored record otherwise.
	SaveOrUpdate(ctx context.Context, s *Seller) error

	// Remove deletes a seller. Returns false if nothing was stored under id.
	Remove(ctx context.Context, id int) (bool, error)
}
