package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"

	"plreport/internal/report"
)

// Default target percentages, applied independently whenever the caller does
// not supply one, so the annotation always prints.
const (
	defaultCostOfSalesTarget = 30.0
	defaultPayrollTarget     = 25.0
	defaultProfitTarget      = 15.0
)

// Options configures a render. Zero value is usable.
type Options struct {
	Currency          string
	CostOfSalesTarget *float64
	PayrollTarget     *float64
	ProfitTarget      *float64
}

func (o Options) targets() (costOfSales, payroll, profit float64) {
	costOfSales = defaultCostOfSalesTarget
	payroll = defaultPayrollTarget
	profit = defaultProfitTarget
	if o.CostOfSalesTarget != nil {
		costOfSales = *o.CostOfSalesTarget
	}
	if o.PayrollTarget != nil {
		payroll = *o.PayrollTarget
	}
	if o.ProfitTarget != nil {
		profit = *o.ProfitTarget
	}
	return costOfSales, payroll, profit
}

func (o Options) symbol() string { return currencySymbol(o.Currency) }

// strategy is one page-layout rendering mode. Both implementations share the
// cursor and geometry services; only column arrangement differs.
type strategy interface {
	render() error
}

// Render parses the raw document and renders it in whichever mode the
// document's own column summary declares.
func Render(raw *report.RawReport, opts Options) ([]byte, error) {
	if opts.Currency == "" {
		opts.Currency = raw.Header.Currency
	}
	if raw.IsMonthly() {
		return RenderMonthly(report.ParseMonthly(raw), opts)
	}
	return RenderPeriod(report.Parse(raw), opts)
}

// RenderBase64 renders and encodes the document bytes as standard base64.
func RenderBase64(raw *report.RawReport, opts Options) (string, error) {
	b, err := Render(raw, opts)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// RenderPeriod renders a single-period report.
func RenderPeriod(rep *report.Report, opts Options) ([]byte, error) {
	doc, cur, tr := newDoc(fpdf.OrientationPortrait)
	s := &periodStrategy{doc: doc, cur: cur, tr: tr, rep: rep, opts: opts}
	return output(doc, s)
}

// RenderMonthly renders a by-month report. Month columns need the wide edge of
// the page, so monthly documents are landscape.
func RenderMonthly(rep *report.MonthlyReport, opts Options) ([]byte, error) {
	doc, cur, tr := newDoc(fpdf.OrientationLandscape)
	s := &monthlyStrategy{doc: doc, cur: cur, tr: tr, rep: rep, opts: opts}
	return output(doc, s)
}

func newDoc(orientation string) (*fpdf.Fpdf, *cursor, func(string) string) {
	doc := fpdf.New(orientation, "mm", "A4", "")
	// the cursor owns page breaks; fpdf must not second-guess it
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	_, pageHeight := doc.GetPageSize()
	cur := newCursor(pageHeight, pageMargin, doc.AddPage)
	return doc, cur, tr
}

func output(doc *fpdf.Fpdf, s strategy) ([]byte, error) {
	if err := s.render(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
