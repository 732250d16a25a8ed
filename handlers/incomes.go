package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/models"
	"financas-api/utils"
)

type IncomeHandler struct {
	DB *sql.DB
}

func fetchIncomes(ctx context.Context, db *sql.DB) ([]models.Income, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, month, name, data FROM incomes ORDER BY month, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incomes := []models.Income{}
	for rows.Next() {
		var income models.Income
		if err := rows.Scan(&income.ID, &income.Month, &income.Name, &income.Data); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

// GetIncomes returns every income record.
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
	incomes, err := fetchIncomes(c.Request.Context(), h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch incomes")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// CreateIncome inserts a new income record. Multiple records may share a
// month (several earners or sources).
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req models.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.IsValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}
	if req.Name == "" {
		req.Name = "Principal"
	}
	if req.Data == nil {
		req.Data = models.IncomeData{}
	}

	income := models.Income{Month: req.Month, Name: req.Name, Data: req.Data}
	err := h.DB.QueryRowContext(c.Request.Context(), `
		INSERT INTO incomes (month, name, data)
		VALUES ($1, $2, $3)
		RETURNING id
	`, income.Month, income.Name, income.Data).Scan(&income.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create income")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, income)
}

// UpdateIncome applies a partial patch and returns the updated row.
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Month != nil && !models.IsValidMonth(*req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	var income models.Income
	err := h.DB.QueryRowContext(c.Request.Context(), `
		SELECT id, month, name, data FROM incomes WHERE id = $1
	`, id).Scan(&income.ID, &income.Month, &income.Name, &income.Data)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch income")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if req.Month != nil {
		income.Month = *req.Month
	}
	if req.Name != nil {
		income.Name = *req.Name
	}
	if req.Data != nil {
		income.Data = *req.Data
	}

	_, err = h.DB.ExecContext(c.Request.Context(), `
		UPDATE incomes SET month = $1, name = $2, data = $3 WHERE id = $4
	`, income.Month, income.Name, income.Data, income.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update income")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, income)
}

// DeleteIncome hard-deletes an income record.
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	result, err := h.DB.ExecContext(c.Request.Context(), `DELETE FROM incomes WHERE id = $1`, c.Param("id"))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to delete income")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
