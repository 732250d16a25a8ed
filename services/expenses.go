package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"financas-api/models"
	"financas-api/utils"
)

// ExpenseService owns the multi-step expense writes: the variable→fixed sync,
// the clone-by-month import and the link-aware deletes.
type ExpenseService struct {
	db *sql.DB
}

func NewExpenseService(db *sql.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// SyncVariableToFixed materializes a variable expense as a fixed one, keyed
// by origin_id. Re-running it refreshes the derived row instead of adding a
// second one; the unique constraint on origin_id makes concurrent syncs of
// the same id collapse to a single row, with the loser acting as a refresh.
// All writes commit atomically with the is_synced flag.
func (s *ExpenseService) SyncVariableToFixed(ctx context.Context, variableID string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var expense models.VariableExpense
		err := tx.QueryRowContext(ctx, `
			SELECT id, month, description, amount
			FROM variable_expenses
			WHERE id = $1
		`, variableID).Scan(&expense.ID, &expense.Month, &expense.Description, &expense.Amount)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO fixed_expenses (id, month, name, amount, origin_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (origin_id) DO UPDATE
			SET month = EXCLUDED.month, name = EXCLUDED.name, amount = EXCLUDED.amount
		`, uuid.New().String(), expense.Month, expense.Description, expense.Amount, expense.ID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE variable_expenses SET is_synced = TRUE WHERE id = $1
		`, expense.ID)
		return err
	})
}

// CloneFixedExpenses copies every fixed expense of fromMonth into toMonth
// with fresh identities and no origin link. Returns the number of rows
// inserted; an empty source month yields 0 without error. Deliberately not
// idempotent: the feature is a one-shot import.
func (s *ExpenseService) CloneFixedExpenses(ctx context.Context, fromMonth, toMonth string) (int, error) {
	count := 0
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT name, amount FROM fixed_expenses WHERE month = $1
		`, fromMonth)
		if err != nil {
			return err
		}
		defer rows.Close()

		var clones []models.FixedExpense
		for rows.Next() {
			var expense models.FixedExpense
			if err := rows.Scan(&expense.Name, &expense.Amount); err != nil {
				return err
			}
			clones = append(clones, expense)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for _, clone := range clones {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO fixed_expenses (id, month, name, amount)
				VALUES ($1, $2, $3, $4)
			`, uuid.New().String(), toMonth, clone.Name, clone.Amount); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteVariableExpense removes a variable expense; the origin_id foreign key
// cascades the delete to the fixed expense derived from it, so no orphaned
// link survives.
func (s *ExpenseService) DeleteVariableExpense(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM variable_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFixedExpense removes a fixed expense. When the row was derived from a
// variable expense, the source's is_synced flag is reset in the same
// transaction so the two never disagree.
func (s *ExpenseService) DeleteFixedExpense(ctx context.Context, id string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var originID sql.NullString
		err := tx.QueryRowContext(ctx, `
			SELECT origin_id FROM fixed_expenses WHERE id = $1
		`, id).Scan(&originID)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE id = $1`, id); err != nil {
			return err
		}

		if originID.Valid {
			if _, err := tx.ExecContext(ctx, `
				UPDATE variable_expenses SET is_synced = FALSE WHERE id = $1
			`, originID.String); err != nil {
				return err
			}
		}
		return nil
	})
}
