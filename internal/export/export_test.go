package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regu-ai/regu/internal/accounts"
	"github.com/regu-ai/regu/internal/aging"
	"github.com/regu-ai/regu/internal/receivables"
	"github.com/regu-ai/regu/internal/reports"
)

var header = Header{Entity: "RSUD Sehat", CurrentPeriod: "Dec 2023", PreviousPeriod: "Dec 2022"}

func sampleStatements(t *testing.T) reports.Statements {
	t.Helper()
	chart, err := accounts.DefaultChart(accounts.EntityBLUHospital)
	require.NoError(t, err)
	s, err := reports.Build(chart)
	require.NoError(t, err)
	return s
}

func sampleAging(t *testing.T) aging.Result {
	t.Helper()
	res, err := aging.NewCalculator(aging.PolicyAbsolute).Calculate(
		receivables.DefaultLedger(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return res
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func find(records [][]string, col int, value string) []string {
	for _, rec := range records {
		if len(rec) > col && rec[col] == value {
			return rec
		}
	}
	return nil
}

func TestActivityDocument(t *testing.T) {
	doc := ActivityDocument(header, sampleStatements(t).Activity)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "RSUD Sehat", doc.Entity)
	assert.Equal(t, "Surplus", doc.Sections[2].Rows[0][0].Text)
	assert.Len(t, doc.Sections[0].Rows, 2)
	assert.Len(t, doc.Sections[1].Rows, 3)
}

func TestWriteCSV_Activity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ActivityDocument(header, sampleStatements(t).Activity)))
	records := readCSV(t, buf.Bytes())

	assert.Equal(t, []string{"section", "Code", "Account", "Dec 2023", "Dec 2022", "Variance", "%"}, records[0])

	surplus := find(records, 1, "Surplus")
	require.NotNil(t, surplus)
	assert.Equal(t, "2000000000.00", surplus[2])
	assert.Equal(t, "1800000000.00", surplus[3])
}

func TestWriteCSV_BalanceSheetReportsDifference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, BalanceSheetDocument(header, sampleStatements(t).BalanceSheet)))
	records := readCSV(t, buf.Bytes())

	diff := find(records, 1, "Difference")
	require.NotNil(t, diff)
	assert.Equal(t, "500000000.00", diff[2])
	status := find(records, 1, "Status")
	require.NotNil(t, status)
	assert.Equal(t, "Not balanced", status[2])
}

func TestWriteCSV_CashFlow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, CashFlowDocument(header, sampleStatements(t).CashFlow)))
	records := readCSV(t, buf.Bytes())

	opening := find(records, 1, "Opening cash")
	require.NotNil(t, opening)
	assert.Equal(t, "1200000000.00", opening[2])
	closing := find(records, 1, "Closing cash")
	require.NotNil(t, closing)
	assert.Equal(t, "1500000000.00", closing[2])
}

func TestWriteCSV_Aging(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, AgingDocument(header, sampleAging(t))))
	records := readCSV(t, buf.Bytes())

	r2 := find(records, 1, "r2")
	require.NotNil(t, r2)
	assert.Equal(t, "6", r2[5])
	assert.Equal(t, "50.0", r2[6])
	assert.Equal(t, "25000000.00", r2[7])

	coverage := find(records, 1, "Coverage ratio")
	require.NotNil(t, coverage)
	assert.Equal(t, "9.6", coverage[3])
	assert.Equal(t, "40000000.00", coverage[5])
}

func TestWriteCSV_EmptyLedgerCoverageNotAvailable(t *testing.T) {
	res, err := aging.NewCalculator(aging.PolicyAbsolute).Calculate(nil, time.Now())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, AgingDocument(header, res)))
	coverage := find(readCSV(t, buf.Bytes()), 1, "Coverage ratio")
	require.NotNil(t, coverage)
	assert.Equal(t, "n/a", coverage[3])
}

func TestWritePDF(t *testing.T) {
	docs := []Document{
		ActivityDocument(header, sampleStatements(t).Activity),
		BalanceSheetDocument(header, sampleStatements(t).BalanceSheet),
		CashFlowDocument(header, sampleStatements(t).CashFlow),
		AgingDocument(header, sampleAging(t)),
	}
	for _, doc := range docs {
		t.Run(doc.Title, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WritePDF(&buf, doc))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path := DefaultPath(dir, ReportAging, FormatCSV)
	require.NoError(t, WriteFile(path, FormatCSV, AgingDocument(header, sampleAging(t))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Coverage ratio")
	assert.Equal(t, filepath.Join(dir, "aging.csv"), path)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("xlsx"), Document{}), ErrUnknownFormat)
}

func TestValidReport(t *testing.T) {
	for _, r := range Reports {
		assert.True(t, ValidReport(r), r)
	}
	assert.False(t, ValidReport("ledger"))
}

func TestAgingDocument_Dates(t *testing.T) {
	doc := AgingDocument(header, sampleAging(t))
	assert.Equal(t, "As of 2024-01-01", doc.Subtitle)

	rows := doc.Sections[0].Rows
	require.Len(t, rows, 4)
	assert.Equal(t, "r1", rows[0][0].Text)
	assert.Equal(t, "2023-11-01", rows[0][2].Text)
	assert.Equal(t, "2022-12-01", rows[2][2].Text)
}
