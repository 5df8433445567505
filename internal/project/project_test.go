package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regu-ai/regu/internal/accounts"
	"github.com/regu-ai/regu/internal/aging"
	"github.com/regu-ai/regu/internal/config"
	"github.com/regu-ai/regu/internal/export"
	"github.com/regu-ai/regu/internal/gitops"
	"github.com/regu-ai/regu/internal/model"
)

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	hash, err := Init(dir, InitOptions{Name: "RSUD Sehat", EntityType: "blu_hospital"})
	require.NoError(t, err)
	assert.Empty(t, hash)
	return dir
}

func TestInitAndOpen(t *testing.T) {
	dir := initProject(t)

	for _, f := range []string{config.FileName, accounts.Path(dir), filepath.Join(dir, "receivables", "receivables.csv"), ".gitignore"} {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		_, err := os.Stat(f)
		require.NoError(t, err, "%s should exist", f)
	}

	p, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "RSUD Sehat", p.Config.Entity.Name)
	assert.Len(t, p.Accounts.All(), 12)
	assert.Len(t, p.Receivables, 4)
}

func TestStatements(t *testing.T) {
	p, err := Open(initProject(t))
	require.NoError(t, err)

	s, err := p.Statements()
	require.NoError(t, err)
	assert.True(t, s.Activity.SurplusDeficit.Equal(decimal.NewFromInt(2_000_000_000)))

	r, err := p.Report(model.CategoryLiability)
	require.NoError(t, err)
	assert.Len(t, r.Lines, 2)
}

func TestAging_UsesConfiguredPolicy(t *testing.T) {
	dir := initProject(t)
	cfg := config.Default("RSUD Sehat", "blu_hospital")
	cfg.Aging.FuturePolicy = "reject"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	p, err := Open(dir)
	require.NoError(t, err)

	res, err := p.Aging(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "9.6", res.Summary.CoverageRatio.Round(1).String())

	// Every sample invoice is after 2023-01-01 except one.
	_, err = p.Aging(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, aging.ErrFutureInvoice)
}

func TestAccount(t *testing.T) {
	p, err := Open(initProject(t))
	require.NoError(t, err)

	line, err := p.Account("1001")
	require.NoError(t, err)
	assert.Equal(t, "Kas BLU", line.Name)
	assert.True(t, line.Variance.Equal(decimal.NewFromInt(300_000_000)))
	assert.True(t, line.VariancePercent.Defined)

	_, err = p.Account("9999")
	assert.ErrorIs(t, err, accounts.ErrUnknownAccount)
}

func TestInit_UnknownEntityType(t *testing.T) {
	dir := t.TempDir()
	_, err := Init(dir, InitOptions{Name: "Puskesmas", EntityType: "puskesmas"})
	require.Error(t, err)
	assert.ErrorIs(t, err, accounts.ErrUnknownEntityType)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing is written for a rejected entity type")
}

func TestOpen_UnknownCategory(t *testing.T) {
	dir := initProject(t)
	bad := accounts.Header + "\n1001,Kas,ASSET,1,1,true,\n9001,Mystery,INCOME,1,1,,\n"
	require.NoError(t, os.WriteFile(accounts.Path(dir), []byte(bad), 0o644))

	_, err := Open(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestOpen_MissingLedger(t *testing.T) {
	dir := initProject(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "receivables", "receivables.csv")))

	_, err := Open(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInit_Git(t *testing.T) {
	if !gitops.Available() {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	hash, err := Init(dir, InitOptions{Name: "RSUD Sehat", EntityType: "blu_hospital", Git: true})
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, gitops.IsRepo(dir))
}

func TestDocument(t *testing.T) {
	p, err := Open(initProject(t))
	require.NoError(t, err)
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range export.Reports {
		doc, err := p.Document(name, asOf)
		require.NoError(t, err, name)
		assert.Equal(t, "RSUD Sehat", doc.Entity)
		assert.NotEmpty(t, doc.Sections, name)
	}

	_, err = p.Document("ledger", asOf)
	assert.ErrorIs(t, err, export.ErrUnknownReport)
}
