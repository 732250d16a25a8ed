package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financas-api/services"
)

type FinancingHandler struct{}

type installmentRequest struct {
	TotalValue        decimal.Decimal `json:"totalValue" binding:"required"`
	Entry             decimal.Decimal `json:"entry"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	TotalInstallments int             `json:"totalInstallments" binding:"required"`
}

// ComputeInstallment projects the amortized installment for a loan. Stateless;
// the persisted financing parameters live in the settings blob.
func (h *FinancingHandler) ComputeInstallment(c *gin.Context) {
	var req installmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	summary, err := services.ComputeFinancingSummary(req.TotalValue, req.Entry, req.InterestRate, req.TotalInstallments)
	if errors.Is(err, services.ErrNotFinanceable) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
