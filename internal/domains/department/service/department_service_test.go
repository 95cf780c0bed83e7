package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/department/repository"
)

type brokenRepo struct{}

func (brokenRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return nil, errors.New("catalog unavailable")
}

func (brokenRepo) FindByID(ctx context.Context, id int) (*department.Department, error) {
	return nil, errors.New("catalog unavailable")
}

func TestDepartmentService_FindAll(t *testing.T) {
	svc := NewDepartmentService(repository.NewMemoryRepository())

	items, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = NewDepartmentService(brokenRepo{}).FindAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, department.CodeList, department.GetErrorCode(err))
}

func TestDepartmentService_GetDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewDepartmentService(repository.NewMemoryRepository())

	d, err := svc.GetDepartment(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Computers", d.Name)

	_, err = svc.GetDepartment(ctx, 9)
	assert.True(t, department.IsDepartmentNotFound(err))

	_, err = svc.GetDepartment(ctx, 0)
	assert.Equal(t, department.CodeInvalidID, department.GetErrorCode(err))
}
