// Package api serves the computed statements and the aged receivable ledger
// over a read-only HTTP API.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/regu-ai/regu/internal/accounts"
	"github.com/regu-ai/regu/internal/aging"
	"github.com/regu-ai/regu/internal/export"
	"github.com/regu-ai/regu/internal/model"
	"github.com/regu-ai/regu/internal/project"
)

// OpenFunc loads the current project snapshot.
type OpenFunc func() (*project.Project, error)

// Handler provides HTTP handlers for reports and receivable aging. The
// snapshot is reloaded on every request so edits to the CSV files are picked
// up without a restart.
type Handler struct {
	open OpenFunc
	now  func() time.Time
}

// NewHandler creates a handler reading snapshots through open.
func NewHandler(open OpenFunc) *Handler {
	return &Handler{open: open, now: time.Now}
}

// RegisterRoutes registers the report and receivable routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reports := api.Group("/reports")
	reports.GET("", h.Statements)
	reports.GET("/activity", h.Activity)
	reports.GET("/balance-sheet", h.BalanceSheet)
	reports.GET("/cash-flow", h.CashFlow)
	reports.GET("/categories/:category", h.Category)

	api.GET("/accounts/:code", h.Account)
	api.GET("/receivables/aging", h.Aging)
	api.GET("/exports/:report", h.Export)
}

// Health reports liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Statements returns all three statements.
func (h *Handler) Statements(c echo.Context) error {
	p, err := h.load()
	if err != nil {
		return err
	}
	s, err := p.Statements()
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, s)
}

// Activity returns the Laporan Operasional.
func (h *Handler) Activity(c echo.Context) error {
	p, err := h.load()
	if err != nil {
		return err
	}
	s, err := p.Statements()
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, s.Activity)
}

// BalanceSheet returns the Neraca.
func (h *Handler) BalanceSheet(c echo.Context) error {
	p, err := h.load()
	if err != nil {
		return err
	}
	s, err := p.Statements()
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, s.BalanceSheet)
}

// CashFlow returns the Laporan Arus Kas.
func (h *Handler) CashFlow(c echo.Context) error {
	p, err := h.load()
	if err != nil {
		return err
	}
	s, err := p.Statements()
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, s.CashFlow)
}

// Category returns the report of one account category.
func (h *Handler) Category(c echo.Context) error {
	category, err := model.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	p, err := h.load()
	if err != nil {
		return err
	}
	r, err := p.Report(category)
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// Account returns one account of the chart with its period variance.
func (h *Handler) Account(c echo.Context) error {
	p, err := h.load()
	if err != nil {
		return err
	}
	line, err := p.Account(c.Param("code"))
	if errors.Is(err, accounts.ErrUnknownAccount) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, line)
}

// Aging returns the aged ledger and provision summary as of the as_of query
// parameter, defaulting to today.
func (h *Handler) Aging(c echo.Context) error {
	asOf, err := h.referenceDate(c)
	if err != nil {
		return err
	}
	p, err := h.load()
	if err != nil {
		return err
	}
	res, err := p.Aging(asOf)
	if err != nil {
		return engineError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Export renders a report as a PDF or CSV download.
func (h *Handler) Export(c echo.Context) error {
	report := c.Param("report")
	if !export.ValidReport(report) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown report %q", report))
	}
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	asOf, err := h.referenceDate(c)
	if err != nil {
		return err
	}
	p, err := h.load()
	if err != nil {
		return err
	}
	doc, err := p.Document(report, asOf)
	if err != nil {
		return engineError(err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, doc); err != nil {
		return err
	}
	contentType := "application/pdf"
	if format == export.FormatCSV {
		contentType = "text/csv"
	}
	filename := report + "." + string(format)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

func (h *Handler) referenceDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("as_of")
	if raw == "" {
		now := h.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid as_of %q: expected YYYY-MM-DD", raw))
	}
	return t, nil
}

// load opens the snapshot. A snapshot that exists but does not parse is
// invalid input rather than a server fault.
func (h *Handler) load() (*project.Project, error) {
	p, err := h.open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return p, nil
}

// engineError maps input validation failures to 422 and everything else to 500.
func engineError(err error) error {
	if isValidationError(err) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func isValidationError(err error) bool {
	for _, target := range []error{
		model.ErrUnknownCategory,
		model.ErrUnknownStatus,
		accounts.ErrDuplicateCode,
		aging.ErrNegativeAmount,
		aging.ErrFutureInvoice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
