package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/services"
	"financas-api/utils"
)

type SummaryHandler struct {
	DB *sql.DB
}

// GetSummary serves the monthly and annual aggregates over the current
// snapshots of the three collections.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	incomes, err := fetchIncomes(ctx, h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch incomes for summary")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	fixed, err := fetchFixedExpenses(ctx, h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch fixed expenses for summary")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	variable, err := fetchVariableExpenses(ctx, h.DB)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch variable expenses for summary")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, services.Aggregate(incomes, fixed, variable))
}
