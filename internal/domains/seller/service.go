package seller

import "context"

// Service defines all business logic operations for the Seller domain
type Service interface {
	// FindAll lists sellers
	FindAll(ctx context.Context) ([]*Seller, error)

	// GetSeller retrieves a seller by ID
	GetSeller(ctx context.Context, id int) (*Seller, error)

	// SaveOrUpdate persists a validated seller. Store failures are returned
	// as *StorageError.
	SaveOrUpdate(ctx context.Context, s *Seller) error

	// Remove deletes a seller
	Remove(ctx context.Context, id int) error
}
