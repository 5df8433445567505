package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	rowHeight  = 6.0
	fontFamily = "Arial"
)

func pdfCell(c Cell) (string, string) {
	switch c.Kind {
	case KindAmount:
		return FormatIDR(c.Amount), "R"
	case KindPercent:
		return FormatPercent(c.Percent), "R"
	default:
		return c.Text, "L"
	}
}

// WritePDF renders doc as an A4 portrait PDF.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, 6, tr(doc.Entity), "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont(fontFamily, "I", 9)
		pdf.CellFormat(0, 6, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	for _, s := range doc.Sections {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, 7, tr(s.Heading), "", 1, "L", false, 0, "")

		pdf.SetFont(fontFamily, "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range s.Columns {
			pdf.CellFormat(col.Width, rowHeight, tr(col.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(fontFamily, "", 8)
		for _, row := range s.Rows {
			writeRow(pdf, tr, s.Columns, row)
		}
		if len(s.Rows) == 0 {
			pdf.SetFont(fontFamily, "I", 8)
			pdf.CellFormat(sectionWidth(s.Columns), rowHeight, "No entries", "1", 1, "C", false, 0, "")
		}
		if s.Total != nil {
			pdf.SetFont(fontFamily, "B", 8)
			writeRow(pdf, tr, s.Columns, s.Total)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func writeRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []Column, row []Cell) {
	for i, col := range cols {
		text, align := "", "L"
		if i < len(row) {
			text, align = pdfCell(row[i])
		}
		pdf.CellFormat(col.Width, rowHeight, tr(text), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func sectionWidth(cols []Column) float64 {
	var w float64
	for _, c := range cols {
		w += c.Width
	}
	return w
}
