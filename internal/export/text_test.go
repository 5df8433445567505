package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regu-ai/regu/internal/reports"
)

func TestWriteText_Activity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, ActivityDocument(header, sampleStatements(t).Activity)))

	out := buf.String()
	assert.Contains(t, out, "Laporan Operasional")
	assert.Contains(t, out, "RSUD Sehat")
	assert.Contains(t, out, "Surplus")
	assert.Contains(t, out, "Rp 2.000.000.000")
}

func TestWriteText_AgingShowsNotAvailable(t *testing.T) {
	res := sampleAging(t)
	res.Receivables = nil
	res.Summary.CoverageRatio.Defined = false

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, AgingDocument(header, res)))
	assert.Contains(t, buf.String(), "n/a")
	assert.Contains(t, buf.String(), "(no entries)")
}

func TestWriteText_EmptyReport(t *testing.T) {
	s, err := reports.Build(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, CashFlowDocument(header, s.CashFlow)))
	assert.Contains(t, buf.String(), "Closing cash")
	assert.Contains(t, buf.String(), "Rp 0")
}
