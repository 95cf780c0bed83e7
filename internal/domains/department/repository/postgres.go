package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sellerdesk-backend/internal/domains/department"
)

// Schema creates the departments table. The surrogate position column keeps
// insertion order and lets the seed carry a duplicated department id.
const Schema = `
CREATE TABLE IF NOT EXISTS departments (
    position SERIAL PRIMARY KEY,
    id       INTEGER      NOT NULL,
    name     VARCHAR(100) NOT NULL
);
`

// postgresRepository implements department.Repository
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new department repository instance
func NewPostgresRepository(pool *pgxpool.Pool) department.Repository {
	return &postgresRepository{pool: pool}
}

// EnsureSchema creates the table and seeds it when empty
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create departments table: %w", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, d := range SeedDepartments() {
		batch.Queue(`INSERT INTO departments (id, name) VALUES ($1, $2)`, d.ID, d.Name)
	}
	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	return nil
}

// FindAll retrieves every department in insertion order
func (r *postgresRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	query := `
    SELECT id, name
    FROM departments
    ORDER BY position
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[department.Department])
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return items, nil
}

// FindByID retrieves the first department with the given ID
func (r *postgresRepository) FindByID(ctx context.Context, id int) (*department.Department, error) {
	query := `
    SELECT id, name
    FROM departments
    WHERE id = $1
    ORDER BY position
    LIMIT 1
  `

	var d department.Department
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department by id: %w", err)
	}
	return &d, nil
}
