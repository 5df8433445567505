// Package aging computes receivable age and the CKPN provision required for
// BLU receivables under PMK No. 217/PMK.05/2015.
package aging

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned for a receivable with amount below zero.
	ErrNegativeAmount = errors.New("negative receivable amount")
	// ErrFutureInvoice is returned under PolicyReject for an invoice dated
	// after the reference date.
	ErrFutureInvoice = errors.New("invoice dated after reference date")
	// ErrUnknownPolicy is returned for a future-date policy name that is not recognized.
	ErrUnknownPolicy = errors.New("unknown future-date policy")
)

const daysPerMonth = 30

// Tier is a receivable-age bucket with a fixed provisioning rate.
type Tier string

const (
	TierCurrent  Tier = "under_6_months"
	TierDoubtful Tier = "6_to_12_months"
	TierLoss     Tier = "over_12_months"
)

// Tiers lists the aging tiers in ascending age.
var Tiers = []Tier{TierCurrent, TierDoubtful, TierLoss}

var (
	rateNone = decimal.Zero
	rateHalf = decimal.RequireFromString("0.50")
	rateFull = decimal.NewFromInt(1)
)

// FuturePolicy decides how an invoice dated after the reference date is aged.
type FuturePolicy string

const (
	// PolicyAbsolute ages future-dated invoices by the absolute day difference.
	PolicyAbsolute FuturePolicy = "absolute"
	// PolicyReject fails the computation with ErrFutureInvoice.
	PolicyReject FuturePolicy = "reject"
)

// ParseFuturePolicy converts s to a FuturePolicy. Empty means PolicyAbsolute.
func ParseFuturePolicy(s string) (FuturePolicy, error) {
	switch FuturePolicy(s) {
	case "", PolicyAbsolute:
		return PolicyAbsolute, nil
	case PolicyReject:
		return PolicyReject, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// civil drops the clock and location so two dates compare by calendar day.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// elapsedDays returns referenceDate minus invoiceDate in whole calendar days.
// The result is negative for a future-dated invoice.
func elapsedDays(invoiceDate, referenceDate time.Time) int {
	return int(civil(referenceDate).Sub(civil(invoiceDate)).Hours() / 24)
}

// AgeInMonths returns the whole elapsed days between the invoice date and the
// reference date divided by 30, floored. Future-dated invoices use the
// absolute difference, so the age is never negative.
func AgeInMonths(invoiceDate, referenceDate time.Time) int {
	days := elapsedDays(invoiceDate, referenceDate)
	if days < 0 {
		days = -days
	}
	return days / daysPerMonth
}

// TierFor returns the aging tier for ageMonths.
func TierFor(ageMonths int) Tier {
	switch {
	case ageMonths < 6:
		return TierCurrent
	case ageMonths <= 12:
		return TierDoubtful
	default:
		return TierLoss
	}
}

// Rate returns the provisioning rate of the tier.
func (t Tier) Rate() decimal.Decimal {
	switch t {
	case TierDoubtful:
		return rateHalf
	case TierLoss:
		return rateFull
	default:
		return rateNone
	}
}

// Label returns a short human label for the tier.
func (t Tier) Label() string {
	switch t {
	case TierDoubtful:
		return "6-12 months"
	case TierLoss:
		return "> 12 months"
	default:
		return "< 6 months"
	}
}

// ProvisionRate maps an age in months to the regulatory rate:
// below 6 months 0, 6 through 12 months 0.50, above 12 months 1.00.
func ProvisionRate(ageMonths int) decimal.Decimal {
	return TierFor(ageMonths).Rate()
}

// ProvisionAmount returns amount * rate.
func ProvisionAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}
