package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownStatus is returned for a receivable status other than CURRENT or OVERDUE.
var ErrUnknownStatus = errors.New("unknown receivable status")

// ReceivableStatus is descriptive only; provisioning never reads it.
type ReceivableStatus string

const (
	StatusCurrent ReceivableStatus = "CURRENT"
	StatusOverdue ReceivableStatus = "OVERDUE"
)

// ParseReceivableStatus converts s (case-insensitive) to a ReceivableStatus.
func ParseReceivableStatus(s string) (ReceivableStatus, error) {
	st := ReceivableStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusCurrent, StatusOverdue:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Receivable is one outstanding invoice owed to the entity.
type Receivable struct {
	ID          string           `json:"id"`
	DebtorName  string           `json:"debtor_name"`
	InvoiceDate time.Time        `json:"invoice_date"`
	Amount      decimal.Decimal  `json:"amount"`
	Status      ReceivableStatus `json:"status"`
}
