package department

import "context"

// Service defines the read-only business operations for departments
type Service interface {
	// FindAll lists departments. Callers re-fetch on every form open.
	FindAll(ctx context.Context) ([]Department, error)

	// GetDepartment retrieves a department by ID
	GetDepartment(ctx context.Context, id int) (*Department, error)
}
