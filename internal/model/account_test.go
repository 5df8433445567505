package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"ASSET", CategoryAsset},
		{"liability", CategoryLiability},
		{" Equity ", CategoryEquity},
		{"revenue", CategoryRevenue},
		{"EXPENSE", CategoryExpense},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		require.NoError(t, err, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.in)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, in := range []string{"", "INCOME", "cogs"} {
		_, err := ParseCategory(in)
		require.Error(t, err, "ParseCategory(%q)", in)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	}
}

func TestCategoriesAreValid(t *testing.T) {
	require.Len(t, Categories, 5)
	for _, c := range Categories {
		assert.True(t, c.Valid(), "%s should be valid", c)
		assert.NotEqual(t, string(c), c.Label(), "%s should have a statement label", c)
	}
	assert.False(t, Category("INCOME").Valid())
}

func TestIsShortTermInvestment(t *testing.T) {
	assert.False(t, Account{}.IsShortTermInvestment())
	assert.True(t, Account{InvestmentTermMonths: 6}.IsShortTermInvestment())
	assert.True(t, Account{InvestmentTermMonths: 12}.IsShortTermInvestment())
	assert.False(t, Account{InvestmentTermMonths: 24}.IsShortTermInvestment())
}

func TestParseReceivableStatus(t *testing.T) {
	st, err := ParseReceivableStatus("overdue")
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, st)

	_, err = ParseReceivableStatus("PAID")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
