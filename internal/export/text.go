package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func textCell(c Cell) string {
	switch c.Kind {
	case KindAmount:
		return FormatIDR(c.Amount)
	case KindPercent:
		return FormatPercent(c.Percent)
	default:
		return c.Text
	}
}

func textRow(tw io.Writer, cells []Cell) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = textCell(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t")+"\t")
}

// WriteText renders doc as aligned plain-text tables for a terminal.
func WriteText(w io.Writer, doc Document) error {
	fmt.Fprintln(w, doc.Title)
	if doc.Entity != "" {
		fmt.Fprintln(w, doc.Entity)
	}
	if doc.Subtitle != "" {
		fmt.Fprintln(w, doc.Subtitle)
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(w, "\n%s\n", s.Heading)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		titles := make([]string, len(s.Columns))
		for i, col := range s.Columns {
			titles[i] = col.Title
		}
		fmt.Fprintln(tw, strings.Join(titles, "\t")+"\t")
		for _, row := range s.Rows {
			textRow(tw, row)
		}
		if len(s.Rows) == 0 {
			fmt.Fprintln(tw, "(no entries)\t")
		}
		if s.Total != nil {
			textRow(tw, s.Total)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing %s: %w", s.Heading, err)
		}
	}
	return nil
}
