package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/aging"
	"github.com/regu-ai/regu/internal/model"
	"github.com/regu-ai/regu/internal/reports"
)

// Header carries the entity and period labels printed on every document.
type Header struct {
	Entity         string
	CurrentPeriod  string
	PreviousPeriod string
}

func (h Header) periods() string {
	return fmt.Sprintf("%s compared to %s", h.CurrentPeriod, h.PreviousPeriod)
}

func lineColumns(h Header) []Column {
	return []Column{
		{Title: "Code", Width: 16},
		{Title: "Account", Width: 58},
		{Title: h.CurrentPeriod, Width: 34},
		{Title: h.PreviousPeriod, Width: 34},
		{Title: "Variance", Width: 30},
		{Title: "%", Width: 18},
	}
}

func summaryColumns(h Header) []Column {
	return []Column{
		{Title: "", Width: 74},
		{Title: h.CurrentPeriod, Width: 34},
		{Title: h.PreviousPeriod, Width: 34},
		{Title: "Variance", Width: 30},
		{Title: "%", Width: 18},
	}
}

func reportSection(h Header, r reports.Report) Section {
	rows := make([][]Cell, 0, len(r.Lines))
	for _, l := range r.Lines {
		rows = append(rows, []Cell{
			Text(l.Code),
			Text(l.Name),
			Amount(l.CurrentAmount),
			Amount(l.PreviousAmount),
			Amount(l.Variance),
			Pct(l.VariancePercent),
		})
	}
	totalVariance := r.TotalCurrent.Sub(r.TotalPrevious)
	return Section{
		Heading: r.Title,
		Columns: lineColumns(h),
		Rows:    rows,
		Total: []Cell{
			Text(""),
			Text("Total " + r.Title),
			Amount(r.TotalCurrent),
			Amount(r.TotalPrevious),
			Amount(totalVariance),
			Pct(model.PercentOf(totalVariance, r.TotalPrevious)),
		},
	}
}

func summaryRow(label string, current, previous decimal.Decimal) []Cell {
	variance := current.Sub(previous)
	return []Cell{
		Text(label),
		Amount(current),
		Amount(previous),
		Amount(variance),
		Pct(model.PercentOf(variance, previous)),
	}
}

// ActivityDocument lays out the Laporan Operasional.
func ActivityDocument(h Header, s reports.ActivityStatement) Document {
	label := "Surplus"
	if s.IsDeficit() {
		label = "Deficit"
	}
	return Document{
		Title:    "Laporan Operasional (Statement of Activities)",
		Entity:   h.Entity,
		Subtitle: h.periods(),
		Sections: []Section{
			reportSection(h, s.Revenue),
			reportSection(h, s.Expense),
			{
				Heading: "Surplus / Defisit",
				Columns: summaryColumns(h),
				Rows:    [][]Cell{summaryRow(label, s.SurplusDeficit, s.PreviousSurplusDeficit)},
			},
		},
	}
}

// BalanceSheetDocument lays out the Neraca.
func BalanceSheetDocument(h Header, b reports.BalanceSheet) Document {
	status := "Balanced"
	if !b.Balanced {
		status = "Not balanced"
	}
	return Document{
		Title:    "Neraca (Balance Sheet)",
		Entity:   h.Entity,
		Subtitle: h.periods(),
		Sections: []Section{
			reportSection(h, b.Assets),
			reportSection(h, b.Liabilities),
			reportSection(h, b.Equity),
			{
				Heading: "Summary",
				Columns: []Column{{Title: "", Width: 74}, {Title: h.CurrentPeriod, Width: 116}},
				Rows: [][]Cell{
					{Text("Total assets"), Amount(b.Assets.TotalCurrent)},
					{Text("Total liabilities and equity"), Amount(b.TotalLiabilitiesAndEquity)},
					{Text("Difference"), Amount(b.Difference)},
					{Text("Status"), Text(status)},
				},
			},
		},
	}
}

func cashSection(h Header, heading string, lines []reports.Line) Section {
	rows := make([][]Cell, 0, len(lines))
	current, previous := decimal.Zero, decimal.Zero
	for _, l := range lines {
		rows = append(rows, []Cell{
			Text(l.Code),
			Text(l.Name),
			Amount(l.CurrentAmount),
			Amount(l.PreviousAmount),
			Amount(l.Variance),
			Pct(l.VariancePercent),
		})
		current = current.Add(l.CurrentAmount)
		previous = previous.Add(l.PreviousAmount)
	}
	variance := current.Sub(previous)
	return Section{
		Heading: heading,
		Columns: lineColumns(h),
		Rows:    rows,
		Total: []Cell{
			Text(""),
			Text("Total " + heading),
			Amount(current),
			Amount(previous),
			Amount(variance),
			Pct(model.PercentOf(variance, previous)),
		},
	}
}

// CashFlowDocument lays out the Laporan Arus Kas.
func CashFlowDocument(h Header, c reports.CashFlowStatement) Document {
	return Document{
		Title:    "Laporan Arus Kas (Cash Flow Statement)",
		Entity:   h.Entity,
		Subtitle: h.periods(),
		Sections: []Section{
			cashSection(h, "Kas dan Setara Kas", c.CashAccounts),
			cashSection(h, "Investasi Jangka Pendek", c.ShortTermInvestments),
			{
				Heading: "Arus Kas dari Aktivitas Operasi",
				Columns: []Column{{Title: "", Width: 110}, {Title: h.CurrentPeriod, Width: 80}},
				Rows: [][]Cell{
					{Text("Opening cash"), Amount(c.OpeningCash)},
					{Text("Operating inflows"), Amount(c.OperatingInflows)},
					{Text("Outflows"), Amount(c.Outflows.Neg())},
					{Text("Net change in cash"), Amount(c.NetChange)},
				},
				Total: []Cell{Text("Closing cash"), Amount(c.ClosingCash)},
			},
		},
	}
}

func ratePercent(rate decimal.Decimal) model.Percent {
	return model.PercentOf(rate, decimal.NewFromInt(1))
}

// AgingDocument lays out the aged receivable ledger and its CKPN summary.
func AgingDocument(h Header, r aging.Result) Document {
	ledger := Section{
		Heading: "Umur Piutang (Receivable Aging)",
		Columns: []Column{
			{Title: "ID", Width: 12},
			{Title: "Debtor", Width: 46},
			{Title: "Invoice date", Width: 24},
			{Title: "Amount", Width: 32},
			{Title: "Age (months)", Width: 20},
			{Title: "Rate", Width: 16},
			{Title: "Provision", Width: 40},
		},
	}
	for _, a := range r.Receivables {
		ledger.Rows = append(ledger.Rows, []Cell{
			Text(a.ID),
			Text(a.DebtorName),
			Text(a.InvoiceDate.Format(time.DateOnly)),
			Amount(a.Amount),
			Text(strconv.Itoa(a.AgeMonths)),
			Pct(ratePercent(a.ProvisionRate)),
			Amount(a.ProvisionAmount),
		})
	}
	ledger.Total = []Cell{
		Text(""),
		Text("Total"),
		Text(""),
		Amount(r.Summary.TotalReceivables),
		Text(""),
		Text(""),
		Amount(r.Summary.TotalProvision),
	}

	summary := Section{
		Heading: "Penyisihan Piutang Tak Tertagih (CKPN)",
		Columns: []Column{
			{Title: "Tier", Width: 40},
			{Title: "Count", Width: 18},
			{Title: "Rate", Width: 20},
			{Title: "Amount", Width: 56},
			{Title: "Provision", Width: 56},
		},
	}
	for _, t := range r.Summary.Tiers {
		summary.Rows = append(summary.Rows, []Cell{
			Text(t.Label),
			Text(strconv.Itoa(t.Count)),
			Pct(ratePercent(t.Rate)),
			Amount(t.Amount),
			Amount(t.ProvisionAmount),
		})
	}
	summary.Total = []Cell{
		Text("Coverage ratio"),
		Text(strconv.Itoa(len(r.Receivables))),
		Pct(r.Summary.CoverageRatio),
		Amount(r.Summary.TotalReceivables),
		Amount(r.Summary.TotalProvision),
	}

	return Document{
		Title:    "Analisis Umur Piutang (Receivable Aging)",
		Entity:   h.Entity,
		Subtitle: "As of " + r.ReferenceDate.Format(time.DateOnly),
		Sections: []Section{ledger, summary},
	}
}
