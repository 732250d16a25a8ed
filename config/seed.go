package config

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"financas-api/models"
	"financas-api/utils"
)

// SeedDefaults bootstraps a fresh database: one income row per month, the
// default fixed-expense set and the "moto" financing setting. Runs once; an
// already-populated incomes table disables it entirely.
func SeedDefaults(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM incomes`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check incomes: %w", err)
	}
	if count > 0 {
		return nil
	}

	utils.Logger.Info("Empty database detected, seeding defaults")

	defaultData, err := json.Marshal(models.IncomeData{
		"ifood":   "246",
		"auxilio": "120",
	})
	if err != nil {
		return err
	}

	for _, month := range models.Months {
		if _, err := db.Exec(`
			INSERT INTO incomes (month, name, data) VALUES ($1, 'Principal', $2)
		`, month, defaultData); err != nil {
			return fmt.Errorf("failed to seed income for %s: %w", month, err)
		}
	}

	defaultFixed := []struct {
		Name   string
		Amount string
	}{
		{"Aluguel", "600"},
		{"Celular", "32.50"},
		{"Academia", "89.90"},
		{"Rancho", "550"},
		{"Faculdade", "475"},
		{"Internet", "90.10"},
		{"Água", "64"},
		{"Energia", "65"},
		{"Moto", "640"},
		{"Anel de noivado", "199.90"},
		{"Casamento", "674"},
	}
	for _, expense := range defaultFixed {
		if _, err := db.Exec(`
			INSERT INTO fixed_expenses (month, name, amount) VALUES ('Jan', $1, $2)
		`, expense.Name, expense.Amount); err != nil {
			return fmt.Errorf("failed to seed fixed expense %q: %w", expense.Name, err)
		}
	}

	motoDefaults, err := json.Marshal(map[string]interface{}{
		"entry":             2000,
		"interestRate":      1.8,
		"totalInstallments": 48,
		"installmentValue":  640,
	})
	if err != nil {
		return err
	}
	if _, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES ('moto', $1)
		ON CONFLICT (key) DO NOTHING
	`, motoDefaults); err != nil {
		return fmt.Errorf("failed to seed moto settings: %w", err)
	}

	utils.Logger.WithField("incomes", len(models.Months)).WithField("fixed_expenses", len(defaultFixed)).Info("Seed completed")
	return nil
}
