package models

import "github.com/shopspring/decimal"

// SavingsGoal tracks one month's target versus actual savings. Progress is
// derived by the client (saved/goal); it is never stored.
type SavingsGoal struct {
	ID    string          `json:"id"`
	Month string          `json:"month"`
	Goal  decimal.Decimal `json:"goal"`
	Saved decimal.Decimal `json:"saved"`
}

type CreateSavingsGoalRequest struct {
	Month string          `json:"month" binding:"required"`
	Goal  decimal.Decimal `json:"goal"`
	Saved decimal.Decimal `json:"saved"`
}

type UpdateSavingsGoalRequest struct {
	Month *string          `json:"month"`
	Goal  *decimal.Decimal `json:"goal"`
	Saved *decimal.Decimal `json:"saved"`
}
