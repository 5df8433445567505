package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrUnknownFormat is returned for an export format other than pdf or csv.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrUnknownReport is returned for a report name that cannot be exported.
	ErrUnknownReport = errors.New("unknown report")
)

// Format is an output file format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// ParseFormat converts s to a Format. Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report names accepted by the export command.
const (
	ReportActivity = "activity"
	ReportBalance  = "balance"
	ReportCashFlow = "cashflow"
	ReportAging    = "aging"
)

// Reports lists the exportable report names.
var Reports = []string{ReportActivity, ReportBalance, ReportCashFlow, ReportAging}

// ValidReport reports whether name can be exported.
func ValidReport(name string) bool {
	for _, r := range Reports {
		if r == name {
			return true
		}
	}
	return false
}

// Write renders doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, doc)
	case FormatPDF:
		return WritePDF(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// DefaultPath returns dir/<report>.<format>.
func DefaultPath(dir, report string, f Format) string {
	return filepath.Join(dir, report+"."+string(f))
}

// WriteFile renders doc into path, creating parent directories.
func WriteFile(path string, f Format, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(file, f, doc); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
