package department

import "context"

// Repository defines data access for the Department catalog
type Repository interface {
	// FindAll returns every department in insertion order.
	// Duplicated IDs are returned as stored.
	FindAll(ctx context.Context) ([]Department, error)

	// FindByID returns the first department with the given ID.
	// Returns nil if not found
	FindByID(ctx context.Context, id int) (*Department, error)
}
