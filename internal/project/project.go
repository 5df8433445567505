package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/regu-ai/regu/internal/accounts"
	"github.com/regu-ai/regu/internal/aging"
	"github.com/regu-ai/regu/internal/config"
	"github.com/regu-ai/regu/internal/export"
	"github.com/regu-ai/regu/internal/gitops"
	"github.com/regu-ai/regu/internal/model"
	"github.com/regu-ai/regu/internal/receivables"
	"github.com/regu-ai/regu/internal/reports"
)

// Project is one immutable reporting snapshot loaded from a repo root.
type Project struct {
	Root        string
	Config      *config.Config
	Accounts    *accounts.Service
	Receivables []model.Receivable
}

// Open loads config, chart of accounts, and receivable ledger from repoRoot.
func Open(repoRoot string) (*Project, error) {
	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	accts, err := accounts.Load(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	recs, err := receivables.Load(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("loading receivables: %w", err)
	}

	return &Project{
		Root:        repoRoot,
		Config:      cfg,
		Accounts:    accts,
		Receivables: recs,
	}, nil
}

// Statements builds the three statutory reports.
func (p *Project) Statements() (reports.Statements, error) {
	return reports.Build(p.Accounts.All())
}

// Report builds the report of one category.
func (p *Project) Report(category model.Category) (reports.Report, error) {
	return reports.BuildReport(p.Accounts.All(), category)
}

// Account returns one account of the chart with its period variance.
func (p *Project) Account(code string) (reports.Line, error) {
	a, ok := p.Accounts.Get(code)
	if !ok {
		return reports.Line{}, fmt.Errorf("%w: %q", accounts.ErrUnknownAccount, code)
	}
	return reports.NewLine(a), nil
}

// Aging ages the receivable ledger as of referenceDate under the configured
// future-date policy.
func (p *Project) Aging(referenceDate time.Time) (aging.Result, error) {
	return aging.NewCalculator(p.Config.FuturePolicy()).Calculate(p.Receivables, referenceDate)
}

// Header returns the entity and period labels printed on exported documents.
func (p *Project) Header() export.Header {
	return export.Header{
		Entity:         p.Config.Entity.Name,
		CurrentPeriod:  p.Config.Period.Current,
		PreviousPeriod: p.Config.Period.Previous,
	}
}

// Document builds the printable document of the named report. The reference
// date is only used by the aging report.
func (p *Project) Document(report string, referenceDate time.Time) (export.Document, error) {
	if report == export.ReportAging {
		res, err := p.Aging(referenceDate)
		if err != nil {
			return export.Document{}, err
		}
		return export.AgingDocument(p.Header(), res), nil
	}

	s, err := p.Statements()
	if err != nil {
		return export.Document{}, err
	}
	switch report {
	case export.ReportActivity:
		return export.ActivityDocument(p.Header(), s.Activity), nil
	case export.ReportBalance:
		return export.BalanceSheetDocument(p.Header(), s.BalanceSheet), nil
	case export.ReportCashFlow:
		return export.CashFlowDocument(p.Header(), s.CashFlow), nil
	default:
		return export.Document{}, fmt.Errorf("%w: %q", export.ErrUnknownReport, report)
	}
}

// InitOptions controls project scaffolding.
type InitOptions struct {
	Name       string
	EntityType string
	Git        bool
}

// Init scaffolds a project at dir with the default chart and ledger and,
// when opts.Git is set, records the snapshot as the first commit. Returns the
// commit hash, empty without git.
func Init(dir string, opts InitOptions) (string, error) {
	chart, err := accounts.DefaultChart(opts.EntityType)
	if err != nil {
		return "", err
	}
	svc, err := accounts.NewService(chart)
	if err != nil {
		return "", fmt.Errorf("building default chart: %w", err)
	}

	cfg := config.Default(opts.Name, opts.EntityType)

	for _, d := range []string{"accounts", "receivables", cfg.Export.Dir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	if err := svc.Save(dir); err != nil {
		return "", fmt.Errorf("writing chart of accounts: %w", err)
	}

	if err := receivables.Save(dir, receivables.DefaultLedger()); err != nil {
		return "", fmt.Errorf("writing receivable ledger: %w", err)
	}

	gitignore := cfg.Export.Dir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("writing .gitignore: %w", err)
	}

	if !opts.Git {
		return "", nil
	}

	if err := gitops.Init(dir); err != nil {
		return "", fmt.Errorf("git init: %w", err)
	}
	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.CommitAll(dir, "init: Initialize "+opts.Name, author)
	if err != nil {
		return "", fmt.Errorf("initial commit: %w", err)
	}
	return hash, nil
}
