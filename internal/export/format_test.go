package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/regu-ai/regu/internal/model"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500000000", "Rp 1.500.000.000"},
		{"25000000", "Rp 25.000.000"},
		{"999", "Rp 999"},
		{"0", "Rp 0"},
		{"-500000000", "-Rp 500.000.000"},
		{"1234.6", "Rp 1.235"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	p := model.PercentOf(decimal.NewFromInt(1), decimal.NewFromInt(8))
	assert.Equal(t, "12.5%", FormatPercent(p))
	assert.Equal(t, "n/a", FormatPercent(model.PercentOf(decimal.NewFromInt(1), decimal.Zero)))
}

func TestPlainCells(t *testing.T) {
	assert.Equal(t, "1500.00", plainAmount(decimal.NewFromInt(1500)))
	assert.Equal(t, "n/a", plainPercent(model.Percent{}))
	assert.Equal(t, "9.6", plainPercent(model.PercentOf(decimal.NewFromInt(40), decimal.RequireFromString("415"))))
}
