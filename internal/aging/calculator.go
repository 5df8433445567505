package aging

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// AgedReceivable is a receivable annotated with its age and provision.
type AgedReceivable struct {
	model.Receivable
	AgeMonths       int             `json:"age_months"`
	Tier            Tier            `json:"tier"`
	ProvisionRate   decimal.Decimal `json:"provision_rate"`
	ProvisionAmount decimal.Decimal `json:"provision_amount"`
}

// TierSummary totals one aging tier.
type TierSummary struct {
	Tier            Tier            `json:"tier"`
	Label           string          `json:"label"`
	Rate            decimal.Decimal `json:"rate"`
	Count           int             `json:"count"`
	Amount          decimal.Decimal `json:"amount"`
	ProvisionAmount decimal.Decimal `json:"provision_amount"`
}

// ProvisionSummary is the portfolio view of an aged ledger.
type ProvisionSummary struct {
	TotalReceivables decimal.Decimal `json:"total_receivables"`
	TotalProvision   decimal.Decimal `json:"total_provision"`
	CoverageRatio    model.Percent   `json:"coverage_ratio"`
	Tiers            []TierSummary   `json:"tiers"`
}

// Result is an aged ledger with its summary.
type Result struct {
	ReferenceDate time.Time        `json:"reference_date"`
	Receivables   []AgedReceivable `json:"receivables"`
	Summary       ProvisionSummary `json:"summary"`
}

// Calculator ages receivables under a future-date policy.
type Calculator struct {
	policy FuturePolicy
}

// NewCalculator creates a Calculator. An empty policy means PolicyAbsolute.
func NewCalculator(policy FuturePolicy) *Calculator {
	if policy == "" {
		policy = PolicyAbsolute
	}
	return &Calculator{policy: policy}
}

// Validate checks every receivable against referenceDate and returns the
// first violation.
func (c *Calculator) Validate(recs []model.Receivable, referenceDate time.Time) error {
	for _, r := range recs {
		if r.Amount.IsNegative() {
			return fmt.Errorf("receivable %s: %w: %s", r.ID, ErrNegativeAmount, r.Amount)
		}
		if c.policy == PolicyReject && elapsedDays(r.InvoiceDate, referenceDate) < 0 {
			return fmt.Errorf("receivable %s: %w: %s after %s", r.ID, ErrFutureInvoice,
				r.InvoiceDate.Format(time.DateOnly), referenceDate.Format(time.DateOnly))
		}
	}
	return nil
}

// Age annotates every receivable with age, tier, rate and provision. The
// whole ledger is validated first; on error nothing is returned.
func (c *Calculator) Age(recs []model.Receivable, referenceDate time.Time) ([]AgedReceivable, error) {
	if err := c.Validate(recs, referenceDate); err != nil {
		return nil, err
	}

	aged := make([]AgedReceivable, 0, len(recs))
	for _, r := range recs {
		months := AgeInMonths(r.InvoiceDate, referenceDate)
		tier := TierFor(months)
		rate := tier.Rate()
		aged = append(aged, AgedReceivable{
			Receivable:      r,
			AgeMonths:       months,
			Tier:            tier,
			ProvisionRate:   rate,
			ProvisionAmount: ProvisionAmount(r.Amount, rate),
		})
	}
	return aged, nil
}

// Calculate ages the ledger and summarizes it.
func (c *Calculator) Calculate(recs []model.Receivable, referenceDate time.Time) (Result, error) {
	aged, err := c.Age(recs, referenceDate)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ReferenceDate: civil(referenceDate),
		Receivables:   aged,
		Summary:       Summarize(aged),
	}, nil
}

// Summarize totals an aged ledger. The coverage ratio is undefined (zero)
// when total receivables are zero.
func Summarize(aged []AgedReceivable) ProvisionSummary {
	tiers := make([]TierSummary, len(Tiers))
	index := make(map[Tier]int, len(Tiers))
	for i, t := range Tiers {
		tiers[i] = TierSummary{Tier: t, Label: t.Label(), Rate: t.Rate(), Amount: decimal.Zero, ProvisionAmount: decimal.Zero}
		index[t] = i
	}

	total, provision := decimal.Zero, decimal.Zero
	for _, a := range aged {
		total = total.Add(a.Amount)
		provision = provision.Add(a.ProvisionAmount)

		ts := &tiers[index[a.Tier]]
		ts.Count++
		ts.Amount = ts.Amount.Add(a.Amount)
		ts.ProvisionAmount = ts.ProvisionAmount.Add(a.ProvisionAmount)
	}

	return ProvisionSummary{
		TotalReceivables: total,
		TotalProvision:   provision,
		CoverageRatio:    model.PercentOf(provision, total),
		Tiers:            tiers,
	}
}
