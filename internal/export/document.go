// Package export renders statements and aged ledgers as CSV or PDF files.
// Rendering is kept out of the engine: documents are built from the computed
// reports and only formatted here.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// CellKind selects how a cell is rendered.
type CellKind int

const (
	KindText CellKind = iota
	KindAmount
	KindPercent
)

// Cell is one table value. Amounts and percents keep their exact value so
// each renderer chooses its own formatting.
type Cell struct {
	Kind    CellKind
	Text    string
	Amount  decimal.Decimal
	Percent model.Percent
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Amount returns a money cell.
func Amount(d decimal.Decimal) Cell { return Cell{Kind: KindAmount, Amount: d} }

// Pct returns a percent cell.
func Pct(p model.Percent) Cell { return Cell{Kind: KindPercent, Percent: p} }

// Column describes a table column. Width is in millimetres on an A4 page.
type Column struct {
	Title string
	Width float64
}

// Section is one titled table of a document. A nil Total means no total row.
type Section struct {
	Heading string
	Columns []Column
	Rows    [][]Cell
	Total   []Cell
}

// Document is a printable report.
type Document struct {
	Title    string
	Entity   string
	Subtitle string
	Sections []Section
}
