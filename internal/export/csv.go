package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

func csvCell(c Cell) string {
	switch c.Kind {
	case KindAmount:
		return plainAmount(c.Amount)
	case KindPercent:
		return plainPercent(c.Percent)
	default:
		return c.Text
	}
}

func csvRecord(heading string, cells []Cell) []string {
	rec := make([]string, 0, len(cells)+1)
	rec = append(rec, heading)
	for _, c := range cells {
		rec = append(rec, csvCell(c))
	}
	return rec
}

// WriteCSV writes doc as CSV. Each section starts with its column header;
// every record is prefixed with the section heading.
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	for _, s := range doc.Sections {
		header := make([]string, 0, len(s.Columns)+1)
		header = append(header, "section")
		for _, col := range s.Columns {
			header = append(header, col.Title)
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing %s header: %w", s.Heading, err)
		}
		for i, row := range s.Rows {
			if err := cw.Write(csvRecord(s.Heading, row)); err != nil {
				return fmt.Errorf("writing %s row %d: %w", s.Heading, i+1, err)
			}
		}
		if s.Total != nil {
			if err := cw.Write(csvRecord(s.Heading, s.Total)); err != nil {
				return fmt.Errorf("writing %s total: %w", s.Heading, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
