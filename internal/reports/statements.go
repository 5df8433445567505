package reports

import (
	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// ActivityStatement is the single-step Laporan Operasional.
type ActivityStatement struct {
	Revenue                Report          `json:"revenue"`
	Expense                Report          `json:"expense"`
	SurplusDeficit         decimal.Decimal `json:"surplus_deficit"`
	PreviousSurplusDeficit decimal.Decimal `json:"previous_surplus_deficit"`
}

// IsDeficit reports whether the current period closed at a deficit.
func (s ActivityStatement) IsDeficit() bool {
	return s.SurplusDeficit.IsNegative()
}

// BalanceSheet is the Neraca. The accounting identity is reported through
// Difference and Balanced but never enforced.
type BalanceSheet struct {
	Assets                    Report          `json:"assets"`
	Liabilities               Report          `json:"liabilities"`
	Equity                    Report          `json:"equity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	Difference                decimal.Decimal `json:"difference"`
	Balanced                  bool            `json:"balanced"`
}

// CashFlowStatement is the simplified direct-method Laporan Arus Kas.
// OpeningCash + OperatingInflows - Outflows always equals ClosingCash.
type CashFlowStatement struct {
	CashAccounts         []Line          `json:"cash_accounts"`
	ShortTermInvestments []Line          `json:"short_term_investments"`
	OpeningCash          decimal.Decimal `json:"opening_cash"`
	OperatingInflows     decimal.Decimal `json:"operating_inflows"`
	Outflows             decimal.Decimal `json:"outflows"`
	NetChange            decimal.Decimal `json:"net_change"`
	ClosingCash          decimal.Decimal `json:"closing_cash"`
}

// Statements bundles the three statutory reports for one chart snapshot.
type Statements struct {
	Activity     ActivityStatement `json:"activity"`
	BalanceSheet BalanceSheet      `json:"balance_sheet"`
	CashFlow     CashFlowStatement `json:"cash_flow"`
}

// Build produces all three statements from chart.
func Build(chart []model.Account) (Statements, error) {
	if err := validateChart(chart); err != nil {
		return Statements{}, err
	}
	return Statements{
		Activity:     activity(chart),
		BalanceSheet: balanceSheet(chart),
		CashFlow:     cashFlow(chart),
	}, nil
}

// BuildActivity produces the activity statement from chart.
func BuildActivity(chart []model.Account) (ActivityStatement, error) {
	if err := validateChart(chart); err != nil {
		return ActivityStatement{}, err
	}
	return activity(chart), nil
}

// BuildBalanceSheet produces the balance sheet from chart.
func BuildBalanceSheet(chart []model.Account) (BalanceSheet, error) {
	if err := validateChart(chart); err != nil {
		return BalanceSheet{}, err
	}
	return balanceSheet(chart), nil
}

// BuildCashFlow produces the cash flow statement from chart.
func BuildCashFlow(chart []model.Account) (CashFlowStatement, error) {
	if err := validateChart(chart); err != nil {
		return CashFlowStatement{}, err
	}
	return cashFlow(chart), nil
}

func activity(chart []model.Account) ActivityStatement {
	revAccts := SelectByCategory(chart, model.CategoryRevenue)
	expAccts := SelectByCategory(chart, model.CategoryExpense)
	revenue := newReport(model.CategoryRevenue, revAccts)
	expense := newReport(model.CategoryExpense, expAccts)
	return ActivityStatement{
		Revenue:                revenue,
		Expense:                expense,
		SurplusDeficit:         ComputeSurplusDeficit(revAccts, expAccts),
		PreviousSurplusDeficit: revenue.TotalPrevious.Sub(expense.TotalPrevious),
	}
}

func balanceSheet(chart []model.Account) BalanceSheet {
	assets := newReport(model.CategoryAsset, SelectByCategory(chart, model.CategoryAsset))
	liabilities := newReport(model.CategoryLiability, SelectByCategory(chart, model.CategoryLiability))
	equity := newReport(model.CategoryEquity, SelectByCategory(chart, model.CategoryEquity))

	claims := liabilities.TotalCurrent.Add(equity.TotalCurrent)
	diff := assets.TotalCurrent.Sub(claims)
	return BalanceSheet{
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalLiabilitiesAndEquity: claims,
		Difference:                diff,
		Balanced:                  diff.IsZero(),
	}
}

func cashFlow(chart []model.Account) CashFlowStatement {
	var cash, investments []model.Account
	for _, a := range SelectByCategory(chart, model.CategoryAsset) {
		switch {
		case a.IsLiquid:
			cash = append(cash, a)
		case a.IsShortTermInvestment():
			investments = append(investments, a)
		}
	}

	closing, opening := AggregateTotals(cash)
	inflows, _ := AggregateTotals(SelectByCategory(chart, model.CategoryRevenue))
	net := closing.Sub(opening)

	return CashFlowStatement{
		CashAccounts:         newReport(model.CategoryAsset, cash).Lines,
		ShortTermInvestments: newReport(model.CategoryAsset, investments).Lines,
		OpeningCash:          opening,
		OperatingInflows:     inflows,
		Outflows:             inflows.Sub(net),
		NetChange:            net,
		ClosingCash:          closing,
	}
}
