package receivables

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// Path returns the location of the receivable ledger under a repo root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, "receivables", "receivables.csv")
}

// Load reads receivables/receivables.csv from a repo root.
func Load(repoRoot string) ([]model.Receivable, error) {
	f, err := os.Open(Path(repoRoot))
	if err != nil {
		return nil, fmt.Errorf("opening receivable ledger: %w", err)
	}
	defer f.Close()

	recs, err := ReadReceivables(f)
	if err != nil {
		return nil, fmt.Errorf("reading receivable ledger: %w", err)
	}
	return recs, nil
}

// Save writes the ledger to receivables/receivables.csv.
func Save(repoRoot string, recs []model.Receivable) error {
	path := Path(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating receivables dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating receivable ledger: %w", err)
	}

	if err := WriteReceivables(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("writing receivable ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing receivable ledger: %w", err)
	}
	return nil
}

// DefaultLedger returns the sample receivable ledger written by init.
func DefaultLedger() []model.Receivable {
	return []model.Receivable{
		{ID: "r1", DebtorName: "BPJS Kesehatan", InvoiceDate: date(2023, 11, 1), Amount: decimal.NewFromInt(250_000_000), Status: model.StatusCurrent},
		{ID: "r2", DebtorName: "Asuransi Mandiri", InvoiceDate: date(2023, 6, 15), Amount: decimal.NewFromInt(50_000_000), Status: model.StatusOverdue},
		{ID: "r3", DebtorName: "Pasien Umum (Tn. Budi)", InvoiceDate: date(2022, 12, 1), Amount: decimal.NewFromInt(15_000_000), Status: model.StatusOverdue},
		{ID: "r4", DebtorName: "Kemenkes RI", InvoiceDate: date(2023, 9, 1), Amount: decimal.NewFromInt(100_000_000), Status: model.StatusCurrent},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
