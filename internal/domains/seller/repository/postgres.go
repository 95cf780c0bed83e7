package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
	"sellerdesk-backend/pkg/database"
)

// Schema creates the sellers table. The department is stored by id and name
// because department ids are not unique in the catalog.
const Schema = `
CREATE TABLE IF NOT EXISTS sellers (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(70)  NOT NULL,
    email           VARCHAR(255) NOT NULL,
    birth_date      TIMESTAMPTZ,
    base_salary     NUMERIC,
    department_id   INTEGER,
    department_name VARCHAR(100)
);
`

const selectColumns = `
    id, name, email, birth_date, base_salary::TEXT, department_id, department_name
`

// postgresRepository implements seller.Repository
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new seller repository instance
func NewPostgresRepository(pool *pgxpool.Pool) seller.Repository {
	return &postgresRepository{pool: pool}
}

// EnsureSchema creates the sellers table if missing
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create sellers table: %w", err)
	}
	return nil
}

// FindAll retrieves every seller ordered by ID
func (r *postgresRepository) FindAll(ctx context.Context) ([]*seller.Seller, error) {
	query := `SELECT ` + selectColumns + ` FROM sellers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, seller.NewStorageError("find all", err)
	}
	defer rows.Close()

	var out []*seller.Seller
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			return nil, seller.NewStorageError("find all", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, seller.NewStorageError("find all", err)
	}
	return out, nil
}

// FindByID retrieves a seller by ID
func (r *postgresRepository) FindByID(ctx context.Context, id int) (*seller.Seller, error) {
	query := `SELECT ` + selectColumns + ` FROM sellers WHERE id = $1`

	s, err := scanSeller(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, seller.NewStorageError("find by id", err)
	}
	return s, nil
}

// SaveOrUpdate inserts new sellers and updates known ones. An update of an
// unknown id falls back to an insert under that id.
func (r *postgresRepository) SaveOrUpdate(ctx context.Context, s *seller.Seller) error {
	args := sellerArgs(s)
	var newID *int

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if s.ID == nil {
			var id int
			err := tx.QueryRow(ctx, `
        INSERT INTO sellers (name, email, birth_date, base_salary, department_id, department_name)
        VALUES ($1, $2, $3, $4::TEXT::NUMERIC, $5, $6)
        RETURNING id
      `, args...).Scan(&id)
			if err != nil {
				return fmt.Errorf("insert seller: %w", err)
			}
			newID = &id
			return nil
		}

		tag, err := tx.Exec(ctx, `
      UPDATE sellers
      SET name = $2, email = $3, birth_date = $4, base_salary = $5::TEXT::NUMERIC,
          department_id = $6, department_name = $7
      WHERE id = $1
    `, append([]interface{}{*s.ID}, args...)...)
		if err != nil {
			return fmt.Errorf("update seller: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `
      INSERT INTO sellers (id, name, email, birth_date, base_salary, department_id, department_name)
      VALUES ($1, $2, $3, $4, $5::TEXT::NUMERIC, $6, $7)
    `, append([]interface{}{*s.ID}, args...)...); err != nil {
			return fmt.Errorf("insert seller with id: %w", err)
		}
		// keep the serial ahead of explicit ids
		_, err = tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('sellers', 'id'), GREATEST((SELECT MAX(id) FROM sellers), 1))`)
		return err
	})
	if err != nil {
		return seller.NewStorageError("save", err)
	}
	if newID != nil {
		s.ID = newID
	}
	return nil
}

// Remove deletes a seller record
func (r *postgresRepository) Remove(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return false, seller.NewStorageError("remove", err)
	}
	return tag.RowsAffected() > 0, nil
}

func sellerArgs(s *seller.Seller) []interface{} {
	var salary *string
	if s.BaseSalary != nil {
		v := s.BaseSalary.String()
		salary = &v
	}
	var depID *int
	var depName *string
	if s.Department != nil {
		depID = &s.Department.ID
		depName = &s.Department.Name
	}
	return []interface{}{s.Name, s.Email, s.BirthDate, salary, depID, depName}
}

func scanSeller(row pgx.Row) (*seller.Seller, error) {
	var (
		id        int
		s         seller.Seller
		birthDate *time.Time
		salary    *string
		depID     *int
		depName   *string
	)
	if err := row.Scan(&id, &s.Name, &s.Email, &birthDate, &salary, &depID, &depName); err != nil {
		return nil, err
	}

	s.ID = &id
	s.BirthDate = birthDate
	if salary != nil {
		s.BaseSalary = seller.ParseSalary(*salary)
	}
	if depID != nil {
		d := department.Department{ID: *depID}
		if depName != nil {
			d.Name = *depName
		}
		s.Department = &d
	}
	return &s, nil
}
