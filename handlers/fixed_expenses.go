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

type FixedExpenseHandler struct {
	DB       *sql.DB
	Expenses *services.ExpenseService
}

func fetchFixedExpenses(ctx context.Context, db *sql.DB) ([]models.FixedExpense, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, month, name, amount, origin_id FROM fixed_expenses ORDER BY month, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.FixedExpense{}
	for rows.Next() {
		var expense models.FixedExpense
		var originID sql.NullString
		if err := rows.Scan(&expense.ID, &expense.Month, &expense.Name, &expense.Amount, &originID); err != nil {
			return nil, err
		}
		if originID.Valid {
			expense.OriginID = &originID.String
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (h *FixedExpenseHandler) GetFixedExpenses(c *gin.Context) {
	expenses, err := fetchFixedExpenses(c.Request.Context(), h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch fixed expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	var req models.CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Month == "" {
		req.Month = "Jan"
	}
	if !models.IsValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	expense := models.FixedExpense{Month: req.Month, Name: req.Name, Amount: req.Amount}
	err := h.DB.QueryRowContext(c.Request.Context(), `
		INSERT INTO fixed_expenses (month, name, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`, expense.Month, expense.Name, expense.Amount).Scan(&expense.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create fixed expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *FixedExpenseHandler) UpdateFixedExpense(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Month != nil && !models.IsValidMonth(*req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	var expense models.FixedExpense
	var originID sql.NullString
	err := h.DB.QueryRowContext(c.Request.Context(), `
		SELECT id, month, name, amount, origin_id FROM fixed_expenses WHERE id = $1
	`, id).Scan(&expense.ID, &expense.Month, &expense.Name, &expense.Amount, &originID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Fixed expense not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch fixed expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if originID.Valid {
		expense.OriginID = &originID.String
	}

	if req.Month != nil {
		expense.Month = *req.Month
	}
	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}

	_, err = h.DB.ExecContext(c.Request.Context(), `
		UPDATE fixed_expenses SET month = $1, name = $2, amount = $3 WHERE id = $4
	`, expense.Month, expense.Name, expense.Amount, expense.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update fixed expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *FixedExpenseHandler) DeleteFixedExpense(c *gin.Context) {
	err := h.Expenses.DeleteFixedExpense(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Fixed expense not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to delete fixed expense")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CloneFixedExpenses copies one month's fixed expenses into another month.
func (h *FixedExpenseHandler) CloneFixedExpenses(c *gin.Context) {
	var req models.CloneFixedExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.IsValidMonth(req.FromMonth) || !models.IsValidMonth(req.ToMonth) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	count, err := h.Expenses.CloneFixedExpenses(c.Request.Context(), req.FromMonth, req.ToMonth)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to clone fixed expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"count": count})
}
