package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Department seed rows. Employees reference these by position, so the two
// slices must stay the same length.
var departmentNames = []string{"HR", "Engineering", "Sales"}

var employeeNames = []string{"John Doe", "Jane Smith", "Sam Johnson"}

// CreateSampleData inserts the fixed seed set: three departments and three
// employees, each employee assigned to one department by position. The schema
// initializer has already reset both tables, so inserts never conflict.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentIDs := make([]int64, 0, len(departmentNames))

	for _, name := range departmentNames {
		var id int64
		err := dbPool.QueryRow(ctx,
			`INSERT INTO departments (name) VALUES ($1) RETURNING id`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("seeding department %q: %w", name, err)
		}
		departmentIDs = append(departmentIDs, id)
	}

	for i, name := range employeeNames {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO employees (name, department_id) VALUES ($1, $2)`,
			name, departmentIDs[i])
		if err != nil {
			return fmt.Errorf("seeding employee %q: %w", name, err)
		}
	}

	lgr.Info().
		Int("departments", len(departmentNames)).
		Int("employees", len(employeeNames)).
		Msg("Sample data inserted")

	return nil
}
