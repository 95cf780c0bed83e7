//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/department/repository"
	"sellerdesk-backend/pkg/testutil/containers"
)

func TestPostgresRepository_Seed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	pg := containers.NewPostgresContainer(t)

	require.NoError(t, repository.EnsureSchema(ctx, pg.Pool))
	// second call must not seed again
	require.NoError(t, repository.EnsureSchema(ctx, pg.Pool))

	repo := repository.NewPostgresRepository(pg.Pool)

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.SeedDepartments(), items)

	d, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &department.Department{ID: 1, Name: "Books"}, d)

	d, err = repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, d)
}
