// Package runlog keeps an audit trail of exported reports in
// logs/export-log.csv so every file handed out can be traced back to the
// snapshot it was computed from.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the export log.
type Entry struct {
	Timestamp     time.Time
	Report        string
	Format        string
	Path          string
	ReferenceDate time.Time
	Snapshot      string
}

// Header is the CSV header for export-log.csv.
const Header = "timestamp,report,format,path,reference_date,snapshot"

const (
	numFields        = 6
	logDir           = "logs"
	logFile          = "logs/export-log.csv"
	colTimestamp     = 0
	colReport        = 1
	colFormat        = 2
	colPath          = 3
	colReferenceDate = 4
	colSnapshot      = 5
)

// MarshalEntry converts an Entry to a CSV row. A zero reference date is
// written as an empty cell.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colReport] = e.Report
	row[colFormat] = e.Format
	row[colPath] = e.Path
	if !e.ReferenceDate.IsZero() {
		row[colReferenceDate] = e.ReferenceDate.Format(time.DateOnly)
	}
	row[colSnapshot] = e.Snapshot
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	var ref time.Time
	if s := record[colReferenceDate]; s != "" {
		ref, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return Entry{}, fmt.Errorf("parsing reference date %q: %w", s, err)
		}
	}

	return Entry{
		Timestamp:     ts,
		Report:        record[colReport],
		Format:        record[colFormat],
		Path:          record[colPath],
		ReferenceDate: ref,
		Snapshot:      record[colSnapshot],
	}, nil
}

// Append writes entries to <repoRoot>/logs/export-log.csv, creating the file and header if needed.
func Append(repoRoot string, entries []Entry) error {
	dir := filepath.Join(repoRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(repoRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening export log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/export-log.csv.
// Returns an empty slice if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(repoRoot, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening export log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
