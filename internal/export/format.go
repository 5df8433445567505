package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/regu-ai/regu/internal/model"
)

// FormatIDR renders d as whole Rupiah with Indonesian digit grouping,
// e.g. "Rp 1.500.000.000". Negative values are prefixed with a minus sign.
func FormatIDR(d decimal.Decimal) string {
	p := message.NewPrinter(language.Indonesian)
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-Rp " + p.Sprintf("%d", -n)
	}
	return "Rp " + p.Sprintf("%d", n)
}

// FormatPercent renders p with one decimal place, or "n/a" when undefined.
func FormatPercent(p model.Percent) string {
	return p.String()
}

// plainAmount is the machine-readable rendering used in CSV files.
func plainAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// plainPercent renders p without the percent sign.
func plainPercent(p model.Percent) string {
	if !p.Defined {
		return "n/a"
	}
	return p.Value.StringFixed(1)
}
