package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/models"
	"financas-api/services"
	"financas-api/utils"
)

type VariableExpenseHandler struct {
	DB       *sql.DB
	Expenses *services.ExpenseService
}

func fetchVariableExpenses(ctx context.Context, db *sql.DB) ([]models.VariableExpense, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, month, description, amount, is_synced FROM variable_expenses ORDER BY month, description`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.VariableExpense{}
	for rows.Next() {
		var expense models.VariableExpense
		if err := rows.Scan(&expense.ID, &expense.Month, &expense.Description, &expense.Amount, &expense.IsSynced); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (h *VariableExpenseHandler) GetVariableExpenses(c *gin.Context) {
	expenses, err := fetchVariableExpenses(c.Request.Context(), h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch variable expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *VariableExpenseHandler) CreateVariableExpense(c *gin.Context) {
	var req models.CreateVariableExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.IsValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	expense := models.VariableExpense{Month: req.Month, Description: req.Description, Amount: req.Amount}
	err := h.DB.QueryRowContext(c.Request.Context(), `
		INSERT INTO variable_expenses (month, description, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`, expense.Month, expense.Description, expense.Amount).Scan(&expense.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create variable expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *VariableExpenseHandler) UpdateVariableExpense(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateVariableExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Month != nil && !models.IsValidMonth(*req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	var expense models.VariableExpense
	err := h.DB.QueryRowContext(c.Request.Context(), `
		SELECT id, month, description, amount, is_synced FROM variable_expenses WHERE id = $1
	`, id).Scan(&expense.ID, &expense.Month, &expense.Description, &expense.Amount, &expense.IsSynced)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Variable expense not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch variable expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if req.Month != nil {
		expense.Month = *req.Month
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}

	_, err = h.DB.ExecContext(c.Request.Context(), `
		UPDATE variable_expenses SET month = $1, description = $2, amount = $3 WHERE id = $4
	`, expense.Month, expense.Description, expense.Amount, expense.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update variable expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *VariableExpenseHandler) DeleteVariableExpense(c *gin.Context) {
	err := h.Expenses.DeleteVariableExpense(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Variable expense not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to delete variable expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncVariableExpense promotes a variable expense to a fixed one.
func (h *VariableExpenseHandler) SyncVariableExpense(c *gin.Context) {
	err := h.Expenses.SyncVariableToFixed(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Variable expense not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to sync variable expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
