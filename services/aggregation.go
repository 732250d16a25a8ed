package services

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"financas-api/models"
)

// MonthSummary carries the derived figures for a single month. Months with no
// records report zeros, never get skipped.
type MonthSummary struct {
	Month         string          `json:"month"`
	IncomeTotal   decimal.Decimal `json:"incomeTotal"`
	FixedTotal    decimal.Decimal `json:"fixedTotal"`
	VariableTotal decimal.Decimal `json:"variableTotal"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
	Balance       decimal.Decimal `json:"balance"`
}

type AnnualSummary struct {
	IncomeTotal   decimal.Decimal            `json:"incomeTotal"`
	FixedTotal    decimal.Decimal            `json:"fixedTotal"`
	VariableTotal decimal.Decimal            `json:"variableTotal"`
	ExpenseTotal  decimal.Decimal            `json:"expenseTotal"`
	Balance       decimal.Decimal            `json:"balance"`
	IncomeColumns map[string]decimal.Decimal `json:"incomeColumns"`
}

type Summary struct {
	Months []MonthSummary `json:"months"`
	Annual AnnualSummary  `json:"annual"`
}

// CoerceAmount turns a loosely typed income leaf into a decimal. Absent or
// non-numeric values count as zero; a bad leaf must never poison a total.
func CoerceAmount(v interface{}) decimal.Decimal {
	switch amount := v.(type) {
	case string:
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(amount)
	case json.Number:
		d, err := decimal.NewFromString(amount.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case int:
		return decimal.NewFromInt(int64(amount))
	case int64:
		return decimal.NewFromInt(amount)
	default:
		return decimal.Zero
	}
}

func incomeRecordTotal(data models.IncomeData) decimal.Decimal {
	total := decimal.Zero
	for _, v := range data {
		total = total.Add(CoerceAmount(v))
	}
	return total
}

// Aggregate computes the per-month and annual totals over full snapshots of
// the three collections. Pure; safe to run repeatedly and concurrently.
func Aggregate(incomes []models.Income, fixed []models.FixedExpense, variable []models.VariableExpense) Summary {
	byMonth := make(map[string]*MonthSummary, len(models.Months))
	summary := Summary{
		Months: make([]MonthSummary, len(models.Months)),
		Annual: AnnualSummary{IncomeColumns: map[string]decimal.Decimal{}},
	}
	for i, month := range models.Months {
		summary.Months[i] = MonthSummary{Month: month}
		byMonth[month] = &summary.Months[i]
	}

	for _, income := range incomes {
		m, ok := byMonth[income.Month]
		if !ok {
			continue
		}
		m.IncomeTotal = m.IncomeTotal.Add(incomeRecordTotal(income.Data))
		for col, v := range income.Data {
			summary.Annual.IncomeColumns[col] = summary.Annual.IncomeColumns[col].Add(CoerceAmount(v))
		}
	}
	for _, expense := range fixed {
		if m, ok := byMonth[expense.Month]; ok {
			m.FixedTotal = m.FixedTotal.Add(expense.Amount)
		}
	}
	for _, expense := range variable {
		if m, ok := byMonth[expense.Month]; ok {
			m.VariableTotal = m.VariableTotal.Add(expense.Amount)
		}
	}

	for i := range summary.Months {
		m := &summary.Months[i]
		m.ExpenseTotal = m.FixedTotal.Add(m.VariableTotal)
		m.Balance = m.IncomeTotal.Sub(m.ExpenseTotal)

		summary.Annual.IncomeTotal = summary.Annual.IncomeTotal.Add(m.IncomeTotal)
		summary.Annual.FixedTotal = summary.Annual.FixedTotal.Add(m.FixedTotal)
		summary.Annual.VariableTotal = summary.Annual.VariableTotal.Add(m.VariableTotal)
		summary.Annual.ExpenseTotal = summary.Annual.ExpenseTotal.Add(m.ExpenseTotal)
		summary.Annual.Balance = summary.Annual.Balance.Add(m.Balance)
	}

	return summary
}
