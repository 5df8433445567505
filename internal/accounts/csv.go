package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
const Header = "code,name,category,current_amount,previous_amount,is_liquid,investment_term_months"

// ErrUnexpectedHeader is returned when the first row is not Header.
var ErrUnexpectedHeader = errors.New("unexpected header")

const (
	numFields   = 7
	colCode     = 0
	colName     = 1
	colCategory = 2
	colCurrent  = 3
	colPrevious = 4
	colLiquid   = 5
	colTerm     = 6
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
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

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colCategory] = string(acct.Category)
	row[colCurrent] = acct.CurrentAmount.String()
	row[colPrevious] = acct.PreviousAmount.String()
	if acct.IsLiquid {
		row[colLiquid] = "true"
	}
	if acct.InvestmentTermMonths != 0 {
		row[colTerm] = strconv.Itoa(acct.InvestmentTermMonths)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Account. Unknown categories are
// rejected here so that no report is ever built over an unclassifiable chart.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	code := strings.TrimSpace(record[colCode])
	if code == "" {
		return model.Account{}, fmt.Errorf("missing account code")
	}

	category, err := model.ParseCategory(record[colCategory])
	if err != nil {
		return model.Account{}, fmt.Errorf("account %s: %w", code, err)
	}

	current, err := parseAmount(record[colCurrent])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing current_amount %q: %w", record[colCurrent], err)
	}

	previous, err := parseAmount(record[colPrevious])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing previous_amount %q: %w", record[colPrevious], err)
	}

	var liquid bool
	if record[colLiquid] != "" {
		liquid, err = strconv.ParseBool(record[colLiquid])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing is_liquid %q: %w", record[colLiquid], err)
		}
	}

	var term int
	if record[colTerm] != "" {
		term, err = strconv.Atoi(record[colTerm])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing investment_term_months %q: %w", record[colTerm], err)
		}
		if term < 0 {
			return model.Account{}, fmt.Errorf("investment_term_months %d is negative", term)
		}
	}

	return model.Account{
		Code:                 code,
		Name:                 record[colName],
		Category:             category,
		CurrentAmount:        current,
		PreviousAmount:       previous,
		IsLiquid:             liquid,
		InvestmentTermMonths: term,
	}, nil
}

// parseAmount treats an empty cell as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
