package repository

import (
	"context"
	"sort"
	"sync"

	"sellerdesk-backend/internal/domains/seller"
)

// memoryRepository implements seller.Repository in process memory.
// Writes never fail.
type memoryRepository struct {
	mu     sync.RWMutex
	items  map[int]*seller.Seller
	nextID int
}

// NewMemoryRepository creates an empty in-memory seller store
func NewMemoryRepository() seller.Repository {
	return &memoryRepository{
		items:  make(map[int]*seller.Seller),
		nextID: 1,
	}
}

// FindAll returns copies of every stored seller ordered by ID
func (r *memoryRepository) FindAll(ctx context.Context) ([]*seller.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]*seller.Seller, len(ids))
	for i, id := range ids {
		out[i] = r.items[id].Clone()
	}
	return out, nil
}

// FindByID retrieves a copy of the seller stored under id
func (r *memoryRepository) FindByID(ctx context.Context, id int) (*seller.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

// SaveOrUpdate assigns the next ID to new sellers and replaces existing ones
func (r *memoryRepository) SaveOrUpdate(ctx context.Context, s *seller.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == nil {
		id := r.nextID
		s.ID = &id
	}
	if *s.ID >= r.nextID {
		r.nextID = *s.ID + 1
	}

	r.items[*s.ID] = s.Clone()
	return nil
}

// Remove deletes the seller stored under id
func (r *memoryRepository) Remove(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
