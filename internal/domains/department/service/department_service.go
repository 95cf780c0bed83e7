package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/domains/department"
)

// departmentService implements department.Service
type departmentService struct {
	repo department.Repository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(repo department.Repository) department.Service {
	return &departmentService{
		repo: repo,
	}
}

// FindAll lists departments straight from the repository; no caching
func (s *departmentService) FindAll(ctx context.Context) ([]department.Department, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list departments")
		return nil, department.NewListDepartmentError(err)
	}
	return items, nil
}

// GetDepartment retrieves a department by ID
func (s *departmentService) GetDepartment(ctx context.Context, id int) (*department.Department, error) {
	if id <= 0 {
		return nil, department.NewInvalidDepartmentID(strconv.Itoa(id))
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, department.NewDepartmentNotFound(id)
	}
	return d, nil
}
