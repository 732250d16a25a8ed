package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS incomes (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			month VARCHAR(3) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT 'Principal',
			data JSONB NOT NULL DEFAULT '{}'
		)`,

		`CREATE TABLE IF NOT EXISTS variable_expenses (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			month VARCHAR(3) NOT NULL,
			description TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			is_synced BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		// origin_id is UNIQUE so two concurrent syncs of the same variable
		// expense can never materialize two derived rows; Postgres allows
		// multiple NULLs there, so ordinary rows and clones are unaffected.
		`CREATE TABLE IF NOT EXISTS fixed_expenses (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			month VARCHAR(3) NOT NULL DEFAULT 'Jan',
			name TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			origin_id UUID UNIQUE REFERENCES variable_expenses(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS savings_goals (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			month VARCHAR(3) NOT NULL,
			goal NUMERIC NOT NULL DEFAULT 0,
			saved NUMERIC NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			key VARCHAR(255) UNIQUE NOT NULL,
			value JSONB NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_incomes_month ON incomes(month)`,
		`CREATE INDEX IF NOT EXISTS idx_fixed_expenses_month ON fixed_expenses(month)`,
		`CREATE INDEX IF NOT EXISTS idx_variable_expenses_month ON variable_expenses(month)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
