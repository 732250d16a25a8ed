package services

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFinanceable is returned when the financed amount or the term leaves
// nothing to amortize.
var ErrNotFinanceable = errors.New("financed amount and term must be positive")

// ComputeInstallment projects the monthly installment of a loan using the
// Price (French) amortization table. A zero rate degrades to straight-line.
// The result is rounded to 2 places, half away from zero.
func ComputeInstallment(principal, entry, monthlyRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	financed := principal.Sub(entry)
	if financed.LessThanOrEqual(decimal.Zero) || termMonths <= 0 {
		return decimal.Zero, ErrNotFinanceable
	}

	term := decimal.NewFromInt(int64(termMonths))
	if monthlyRatePercent.IsZero() {
		return financed.Div(term).Round(2), nil
	}

	rate := monthlyRatePercent.Div(decimal.NewFromInt(100))
	// PMT = PV * [i * (1 + i)^n] / [(1 + i)^n - 1]
	growth := decimal.NewFromInt(1).Add(rate).Pow(term)
	installment := financed.Mul(rate.Mul(growth)).Div(growth.Sub(decimal.NewFromInt(1)))
	return installment.Round(2), nil
}

// FinancingSummary carries the installment plus the figures the client
// derives from it.
type FinancingSummary struct {
	InstallmentValue decimal.Decimal `json:"installmentValue"`
	TotalFinanced    decimal.Decimal `json:"totalFinanced"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
}

func ComputeFinancingSummary(principal, entry, monthlyRatePercent decimal.Decimal, termMonths int) (FinancingSummary, error) {
	installment, err := ComputeInstallment(principal, entry, monthlyRatePercent, termMonths)
	if err != nil {
		return FinancingSummary{}, err
	}

	totalFinanced := installment.Mul(decimal.NewFromInt(int64(termMonths)))
	totalPaid := totalFinanced.Add(entry)
	return FinancingSummary{
		InstallmentValue: installment,
		TotalFinanced:    totalFinanced,
		TotalPaid:        totalPaid,
		TotalInterest:    totalPaid.Sub(principal),
	}, nil
}
