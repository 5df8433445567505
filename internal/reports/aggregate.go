// Package reports aggregates a chart of accounts into the statutory BLU
// statements. Every function is pure: inputs are never mutated and derived
// figures are never written back onto accounts.
package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// Line is one account in a report together with its period variance.
type Line struct {
	model.Account
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent model.Percent   `json:"variance_percent"`
}

// Report groups the accounts of one category with their totals.
type Report struct {
	Category      model.Category  `json:"category"`
	Title         string          `json:"title"`
	Lines         []Line          `json:"lines"`
	TotalCurrent  decimal.Decimal `json:"total_current"`
	TotalPrevious decimal.Decimal `json:"total_previous"`
}

// SelectByCategory returns the accounts of category in input order.
func SelectByCategory(accounts []model.Account, category model.Category) []model.Account {
	var out []model.Account
	for _, a := range accounts {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// NewLine pairs an account with its period variance.
func NewLine(a model.Account) Line {
	v, pct := ComputeVariance(a)
	return Line{Account: a, Variance: v, VariancePercent: pct}
}

// ComputeVariance returns current minus previous and the change relative to
// the previous period. The percent is undefined (zero) when previous is zero.
func ComputeVariance(a model.Account) (decimal.Decimal, model.Percent) {
	variance := a.CurrentAmount.Sub(a.PreviousAmount)
	return variance, model.PercentOf(variance, a.PreviousAmount)
}

// AggregateTotals sums current and previous amounts. Empty input yields zeros.
func AggregateTotals(accounts []model.Account) (totalCurrent, totalPrevious decimal.Decimal) {
	totalCurrent, totalPrevious = decimal.Zero, decimal.Zero
	for _, a := range accounts {
		totalCurrent = totalCurrent.Add(a.CurrentAmount)
		totalPrevious = totalPrevious.Add(a.PreviousAmount)
	}
	return totalCurrent, totalPrevious
}

// ComputeSurplusDeficit is the single-step activity result: total revenue
// minus total expense for the current period. Negative means deficit.
func ComputeSurplusDeficit(revenue, expense []model.Account) decimal.Decimal {
	rev, _ := AggregateTotals(revenue)
	exp, _ := AggregateTotals(expense)
	return rev.Sub(exp)
}

// BuildReport selects the accounts of category from chart and computes lines
// and totals. A category with no accounts gives an empty report with zero totals.
func BuildReport(chart []model.Account, category model.Category) (Report, error) {
	if !category.Valid() {
		return Report{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	return newReport(category, SelectByCategory(chart, category)), nil
}

func newReport(category model.Category, accounts []model.Account) Report {
	lines := make([]Line, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, NewLine(a))
	}
	cur, prev := AggregateTotals(accounts)
	return Report{
		Category:      category,
		Title:         category.Label(),
		Lines:         lines,
		TotalCurrent:  cur,
		TotalPrevious: prev,
	}
}

// validateChart rejects a chart holding any account outside the closed
// category set, so that no statement is built over a partial classification.
func validateChart(chart []model.Account) error {
	for _, a := range chart {
		if !a.Category.Valid() {
			return fmt.Errorf("account %s: %w: %q", a.Code, model.ErrUnknownCategory, a.Category)
		}
	}
	return nil
}
