package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/domains/seller"
)

// sellerService implements seller.Service
type sellerService struct {
	repo seller.Repository
}

// NewSellerService creates a new seller service instance
// Dependency injection pattern - receives repository from container
func NewSellerService(repo seller.Repository) seller.Service {
	return &sellerService{
		repo: repo,
	}
}

// FindAll lists every seller
func (s *sellerService) FindAll(ctx context.Context) ([]*seller.Seller, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, seller.NewStorageError("find all", err)
	}
	return items, nil
}

// GetSeller retrieves a seller by ID
func (s *sellerService) GetSeller(ctx context.Context, id int) (*seller.Seller, error) {
	if id <= 0 {
		return nil, seller.NewInvalidSellerID(strconv.Itoa(id))
	}

	sel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, seller.NewStorageError("find by id", err)
	}
	if sel == nil {
		return nil, seller.NewSellerNotFound(id)
	}
	return sel, nil
}

// SaveOrUpdate persists a seller that already passed form validation
func (s *sellerService) SaveOrUpdate(ctx context.Context, sel *seller.Seller) error {
	if sel == nil {
		return errors.New("seller cannot be nil")
	}

	isNew := sel.IsNew()
	if err := s.repo.SaveOrUpdate(ctx, sel); err != nil {
		log.Error().Err(err).Bool("new", isNew).Msg("failed to save seller")
		return seller.NewStorageError("save", err)
	}

	log.Info().
		Int("seller_id", *sel.ID).
		Bool("new", isNew).
		Msg("seller saved")
	return nil
}

// Remove deletes a seller
func (s *sellerService) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return seller.NewInvalidSellerID(strconv.Itoa(id))
	}

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return seller.NewStorageError("remove", err)
	}
	if !removed {
		return seller.NewSellerNotFound(id)
	}

	log.Info().Int("seller_id", id).Msg("seller removed")
	return nil
}
