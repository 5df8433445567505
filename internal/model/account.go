package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownCategory is returned when an account carries a category outside
// the five statutory categories.
var ErrUnknownCategory = errors.New("unknown account category")

// Category classifies accounts in the chart of accounts.
type Category string

const (
	CategoryAsset     Category = "ASSET"
	CategoryLiability Category = "LIABILITY"
	CategoryEquity    Category = "EQUITY"
	CategoryRevenue   Category = "REVENUE"
	CategoryExpense   Category = "EXPENSE"
)

// Categories lists every category in statement order.
var Categories = []Category{
	CategoryAsset,
	CategoryLiability,
	CategoryEquity,
	CategoryRevenue,
	CategoryExpense,
}

// Valid reports whether c is one of the five statutory categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAsset, CategoryLiability, CategoryEquity, CategoryRevenue, CategoryExpense:
		return true
	default:
		return false
	}
}

// Label returns the Indonesian statement heading for the category.
func (c Category) Label() string {
	switch c {
	case CategoryAsset:
		return "Aset (Assets)"
	case CategoryLiability:
		return "Kewajiban (Liabilities)"
	case CategoryEquity:
		return "Ekuitas (Equity)"
	case CategoryRevenue:
		return "Pendapatan (Revenues)"
	case CategoryExpense:
		return "Beban (Expenses)"
	default:
		return string(c)
	}
}

// ParseCategory converts s (case-insensitive) to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Category             Category        `json:"category"`
	CurrentAmount        decimal.Decimal `json:"current_amount"`
	PreviousAmount       decimal.Decimal `json:"previous_amount"` // comparative period
	IsLiquid             bool            `json:"is_liquid,omitempty"`
	InvestmentTermMonths int             `json:"investment_term_months,omitempty"` // 0 = not an investment
}

// IsShortTermInvestment reports whether the account is an investment maturing
// within twelve months.
func (a Account) IsShortTermInvestment() bool {
	return a.InvestmentTermMonths > 0 && a.InvestmentTermMonths <= 12
}
