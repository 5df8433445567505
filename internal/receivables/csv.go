package receivables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// Header is the CSV header for receivables.csv.
const Header = "id,debtor_name,invoice_date,amount,status"

// ErrUnexpectedHeader is returned when the first row is not Header.
var ErrUnexpectedHeader = errors.New("unexpected header")

const (
	numFields = 5
	colID     = 0
	colDebtor = 1
	colDate   = 2
	colAmount = 3
	colStatus = 4
)

// ReadReceivables reads receivables.csv.
func ReadReceivables(r io.Reader) ([]model.Receivable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading receivables CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	var recs []model.Receivable
	for i, rec := range records[1:] {
		entry, err := UnmarshalReceivable(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, entry)
	}
	return recs, nil
}

// WriteReceivables writes receivables.csv (including header).
func WriteReceivables(w io.Writer, recs []model.Receivable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range recs {
		if err := cw.Write(MarshalReceivable(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func checkHeader(record []string) error {
	want := strings.Split(Header, ",")
	for i, col := range want {
		if strings.TrimSpace(record[i]) != col {
			return fmt.Errorf("row 1: %w: column %d is %q, want %q", ErrUnexpectedHeader, i+1, record[i], col)
		}
	}
	return nil
}

// MarshalReceivable converts a Receivable to a CSV row.
func MarshalReceivable(r model.Receivable) []string {
	row := make([]string, numFields)
	row[colID] = r.ID
	row[colDebtor] = r.DebtorName
	row[colDate] = r.InvoiceDate.Format(time.DateOnly)
	row[colAmount] = r.Amount.String()
	row[colStatus] = string(r.Status)
	return row
}

// UnmarshalReceivable converts a CSV row to a Receivable. Amount sign is
// checked by the aging calculator, not here, so a bad row is still reported
// against the receivable it belongs to.
func UnmarshalReceivable(record []string) (model.Receivable, error) {
	if len(record) != numFields {
		return model.Receivable{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(record[colDate]))
	if err != nil {
		return model.Receivable{}, fmt.Errorf("parsing invoice_date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Receivable{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	status, err := model.ParseReceivableStatus(record[colStatus])
	if err != nil {
		return model.Receivable{}, err
	}

	return model.Receivable{
		ID:          record[colID],
		DebtorName:  record[colDebtor],
		InvoiceDate: date,
		Amount:      amount,
		Status:      status,
	}, nil
}
