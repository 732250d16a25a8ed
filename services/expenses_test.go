package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T) (*ExpenseService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewExpenseService(db), mock
}

func TestSyncVariableToFixed(t *testing.T) {
	t.Run("missing variable expense fails with not found", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, month, description, amount\s+FROM variable_expenses`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := service.SyncVariableToFixed(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("upserts the derived row and flags the source atomically", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, month, description, amount\s+FROM variable_expenses`).
			WithArgs("var-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "month", "description", "amount"}).
				AddRow("var-1", "Jan", "Conserto do carro", "350.75"))
		mock.ExpectExec(`INSERT INTO fixed_expenses .+ ON CONFLICT \(origin_id\) DO UPDATE`).
			WithArgs(sqlmock.AnyArg(), "Jan", "Conserto do carro", sqlmock.AnyArg(), "var-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE variable_expenses SET is_synced = TRUE`).
			WithArgs("var-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := service.SyncVariableToFixed(context.Background(), "var-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back everything when the flag update fails", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, month, description, amount\s+FROM variable_expenses`).
			WithArgs("var-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "month", "description", "amount"}).
				AddRow("var-1", "Jan", "Conserto do carro", "350.75"))
		mock.ExpectExec(`INSERT INTO fixed_expenses`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE variable_expenses SET is_synced = TRUE`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := service.SyncVariableToFixed(context.Background(), "var-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCloneFixedExpenses(t *testing.T) {
	t.Run("empty source month clones nothing", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name, amount FROM fixed_expenses WHERE month`).
			WithArgs("Jan").
			WillReturnRows(sqlmock.NewRows([]string{"name", "amount"}))
		mock.ExpectCommit()

		count, err := service.CloneFixedExpenses(context.Background(), "Jan", "Fev")
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("copies every row without the origin link", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name, amount FROM fixed_expenses WHERE month`).
			WithArgs("Jan").
			WillReturnRows(sqlmock.NewRows([]string{"name", "amount"}).
				AddRow("Aluguel", "600").
				AddRow("Internet", "90.1"))
		// The insert column list has no origin_id; clones are plain rows.
		mock.ExpectExec(`INSERT INTO fixed_expenses \(id, month, name, amount\)`).
			WithArgs(sqlmock.AnyArg(), "Fev", "Aluguel", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO fixed_expenses \(id, month, name, amount\)`).
			WithArgs(sqlmock.AnyArg(), "Fev", "Internet", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		count, err := service.CloneFixedExpenses(context.Background(), "Jan", "Fev")
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a failed insert rolls the whole import back", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name, amount FROM fixed_expenses WHERE month`).
			WithArgs("Jan").
			WillReturnRows(sqlmock.NewRows([]string{"name", "amount"}).
				AddRow("Aluguel", "600"))
		mock.ExpectExec(`INSERT INTO fixed_expenses`).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		count, err := service.CloneFixedExpenses(context.Background(), "Jan", "Fev")
		assert.Error(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteVariableExpense(t *testing.T) {
	t.Run("missing row fails with not found", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectExec(`DELETE FROM variable_expenses`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := service.DeleteVariableExpense(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing row deletes cleanly", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectExec(`DELETE FROM variable_expenses`).
			WithArgs("var-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := service.DeleteVariableExpense(context.Background(), "var-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteFixedExpense(t *testing.T) {
	t.Run("origin-linked delete resets the sync flag", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT origin_id FROM fixed_expenses`).
			WithArgs("fix-1").
			WillReturnRows(sqlmock.NewRows([]string{"origin_id"}).AddRow("var-1"))
		mock.ExpectExec(`DELETE FROM fixed_expenses`).
			WithArgs("fix-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE variable_expenses SET is_synced = FALSE`).
			WithArgs("var-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := service.DeleteFixedExpense(context.Background(), "fix-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unlinked delete touches nothing else", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT origin_id FROM fixed_expenses`).
			WithArgs("fix-2").
			WillReturnRows(sqlmock.NewRows([]string{"origin_id"}).AddRow(nil))
		mock.ExpectExec(`DELETE FROM fixed_expenses`).
			WithArgs("fix-2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := service.DeleteFixedExpense(context.Background(), "fix-2")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row fails with not found", func(t *testing.T) {
		service, mock := newMockService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT origin_id FROM fixed_expenses`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := service.DeleteFixedExpense(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
