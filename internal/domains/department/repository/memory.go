package repository

import (
	"context"
	"sync"

	"sellerdesk-backend/internal/domains/department"
)

// SeedDepartments is the demo catalog. ID 1 appears twice; the catalog keeps
// it as stored.
func SeedDepartments() []department.Department {
	return []department.Department{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Computers"},
		{ID: 1, Name: "Eletronics"},
	}
}

// memoryRepository implements department.Repository over a slice
type memoryRepository struct {
	mu    sync.RWMutex
	items []department.Department
}

// NewMemoryRepository creates a catalog holding the given departments.
// With no arguments it is seeded with SeedDepartments.
func NewMemoryRepository(items ...department.Department) department.Repository {
	if len(items) == 0 {
		items = SeedDepartments()
	}
	stored := make([]department.Department, len(items))
	copy(stored, items)
	return &memoryRepository{items: stored}
}

// FindAll returns a fresh copy so callers cannot mutate the catalog
func (r *memoryRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]department.Department, len(r.items))
	copy(out, r.items)
	return out, nil
}

// FindByID returns the first department with the given ID
func (r *memoryRepository) FindByID(ctx context.Context, id int) (*department.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.items {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}
