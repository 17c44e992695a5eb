package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acme/hr-directory/internal/pkg/logger"
)

// Statement is one step of the schema bootstrap.
type Statement struct {
	Description string
	SQL         string
}

// Statements returns the bootstrap DDL in execution order. Tables are dropped
// and recreated on every startup: this resets all data by design (bootstrap
// and demo behavior, not a production migration).
func Statements() []Statement {
	return []Statement{
		{
			Description: "drop table: employees",
			SQL:         `DROP TABLE IF EXISTS employees;`,
		},
		{
			Description: "drop table: departments",
			SQL:         `DROP TABLE IF EXISTS departments;`,
		},
		{
			Description: "create table: departments",
			SQL: `
			CREATE TABLE departments (
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL UNIQUE
			);`,
		},
		{
			Description: "create table: employees",
			SQL: `
			CREATE TABLE employees (
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL,
				department_id INTEGER REFERENCES departments(id),
				created_at TIMESTAMP DEFAULT now(),
				updated_at TIMESTAMP DEFAULT now()
			);`,
		},
	}
}

// Initializer (re)creates the departments and employees tables at startup.
type Initializer struct {
	db *pgxpool.Pool
}

// NewInitializer creates a new schema initializer
func NewInitializer(db *pgxpool.Pool) *Initializer {
	return &Initializer{
		db: db,
	}
}

// Run executes the bootstrap statements in order. The sequence is best-effort
// rather than a single atomic transaction; any failure aborts startup.
func (i *Initializer) Run(ctx context.Context) error {
	for _, stmt := range Statements() {
		if _, err := i.db.Exec(ctx, stmt.SQL); err != nil {
			return fmt.Errorf("schema bootstrap failed at %q: %w", stmt.Description, err)
		}
		logger.Debug().Str("step", stmt.Description).Msg("schema statement applied")
	}

	logger.Info().Msg("Tables created")
	return nil
}
