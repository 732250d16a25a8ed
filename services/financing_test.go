package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeInstallment(t *testing.T) {
	t.Run("price table reference scenario", func(t *testing.T) {
		// Default seed financing: 21490 total, 2000 entry, 1.8%/month, 48 months.
		installment, err := ComputeInstallment(d("21490"), d("2000"), d("1.8"), 48)
		require.NoError(t, err)
		assert.Equal(t, "609.83", installment.StringFixed(2))
	})

	t.Run("zero rate is straight line", func(t *testing.T) {
		installment, err := ComputeInstallment(d("1200"), d("0"), d("0"), 12)
		require.NoError(t, err)
		assert.Equal(t, "100.00", installment.StringFixed(2))
	})

	t.Run("entry covering the principal is not financeable", func(t *testing.T) {
		_, err := ComputeInstallment(d("1000"), d("1000"), d("1.8"), 48)
		assert.ErrorIs(t, err, ErrNotFinanceable)
	})

	t.Run("entry above the principal is not financeable", func(t *testing.T) {
		_, err := ComputeInstallment(d("1000"), d("1500"), d("1.8"), 48)
		assert.ErrorIs(t, err, ErrNotFinanceable)
	})

	t.Run("non-positive term is not financeable", func(t *testing.T) {
		_, err := ComputeInstallment(d("1000"), d("0"), d("1.8"), 0)
		assert.ErrorIs(t, err, ErrNotFinanceable)

		_, err = ComputeInstallment(d("1000"), d("0"), d("1.8"), -12)
		assert.ErrorIs(t, err, ErrNotFinanceable)
	})

	t.Run("two percent over two years", func(t *testing.T) {
		installment, err := ComputeInstallment(d("10000"), d("0"), d("2"), 24)
		require.NoError(t, err)
		assert.Equal(t, "528.71", installment.StringFixed(2))
	})
}

func TestComputeFinancingSummary(t *testing.T) {
	t.Run("derived totals line up with the installment", func(t *testing.T) {
		summary, err := ComputeFinancingSummary(d("21490"), d("2000"), d("1.8"), 48)
		require.NoError(t, err)

		assert.Equal(t, "609.83", summary.InstallmentValue.StringFixed(2))
		assert.True(t, summary.TotalFinanced.Equal(summary.InstallmentValue.Mul(decimal.NewFromInt(48))))
		assert.True(t, summary.TotalPaid.Equal(summary.TotalFinanced.Add(d("2000"))))
		assert.True(t, summary.TotalInterest.Equal(summary.TotalPaid.Sub(d("21490"))))
	})

	t.Run("straight line has zero interest", func(t *testing.T) {
		summary, err := ComputeFinancingSummary(d("1200"), d("0"), d("0"), 12)
		require.NoError(t, err)
		assert.True(t, summary.TotalInterest.IsZero(), "expected zero interest, got %s", summary.TotalInterest)
	})

	t.Run("propagates the guard error", func(t *testing.T) {
		_, err := ComputeFinancingSummary(d("1000"), d("1000"), d("1.8"), 48)
		assert.ErrorIs(t, err, ErrNotFinanceable)
	})
}
