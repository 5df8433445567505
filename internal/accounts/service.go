package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/regu-ai/regu/internal/model"
)

var (
	// ErrDuplicateCode is returned when two accounts share a code.
	ErrDuplicateCode = errors.New("duplicate account code")
	// ErrUnknownAccount is returned when no account has the requested code.
	ErrUnknownAccount = errors.New("unknown account code")
)

// Service provides in-memory lookup over an immutable chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService validates the chart and creates a Service from it.
func NewService(accounts []model.Account) (*Service, error) {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if !a.Category.Valid() {
			return nil, fmt.Errorf("account %s: %w: %q", a.Code, model.ErrUnknownCategory, a.Category)
		}
		if _, dup := byCode[a.Code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, a.Code)
		}
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}, nil
}

// Path returns the location of the chart of accounts under a repo root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, "accounts", "chart-of-accounts.csv")
}

// Load reads chart-of-accounts.csv from a repo root and returns a Service.
func Load(repoRoot string) (*Service, error) {
	f, err := os.Open(Path(repoRoot))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts)
}

// All returns all accounts in chart order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(repoRoot string) error {
	path := Path(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}

	if err := WriteAccounts(f, s.accounts); err != nil {
		f.Close()
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chart of accounts: %w", err)
	}
	return nil
}
