package models

import "github.com/shopspring/decimal"

// FixedExpense is a recurring monthly cost. OriginID links back to the
// variable expense that produced it via sync; at most one fixed expense may
// carry a given origin.
type FixedExpense struct {
	ID       string          `json:"id"`
	Month    string          `json:"month"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	OriginID *string         `json:"originId"`
}

// VariableExpense is an ad-hoc cost entry for a given month.
type VariableExpense struct {
	ID          string          `json:"id"`
	Month       string          `json:"month"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsSynced    bool            `json:"isSynced"`
}

type CreateFixedExpenseRequest struct {
	Month  string          `json:"month"`
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateFixedExpenseRequest struct {
	Month  *string          `json:"month"`
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
}

type CreateVariableExpenseRequest struct {
	Month       string          `json:"month" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateVariableExpenseRequest struct {
	Month       *string          `json:"month"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

type CloneFixedExpensesRequest struct {
	FromMonth string `json:"fromMonth" binding:"required"`
	ToMonth   string `json:"toMonth" binding:"required"`
}
