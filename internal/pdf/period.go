package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"plreport/internal/report"
)

// periodStrategy renders single-period reports: one value column plus one
// percent-of-income column at fixed width ratios.
type periodStrategy struct {
	doc  *fpdf.Fpdf
	cur  *cursor
	tr   func(string) string
	rep  *report.Report
	opts Options

	geo    periodGeometry
	income decimal.Decimal // percent denominator for the whole document
}

func (s *periodStrategy) render() error {
	pageWidth, _ := s.doc.GetPageSize()
	s.geo = newPeriodGeometry(pageWidth - 2*pageMargin)

	if s.rep.Income != nil && s.rep.Income.Total != nil {
		s.income = parseAmount(s.rep.Income.Total.Value)
	}

	costOfSalesTarget, payrollTarget, profitTarget := s.opts.targets()

	s.title()

	if s.rep.Income != nil {
		s.section(*s.rep.Income)
	}
	if s.rep.CostOfSales != nil {
		s.section(*s.rep.CostOfSales)
		s.target(costOfSalesTarget)
	}
	if s.rep.GrossProfit != nil {
		s.totalLine(*s.rep.GrossProfit)
		s.cur.Advance(sectionGap)
	}

	for _, sub := range s.rep.ExpenseSections {
		s.expenseSection(sub)
		if sub.Payroll {
			s.target(payrollTarget)
		}
	}
	if s.rep.ExpensesTotal != nil {
		s.totalLine(*s.rep.ExpensesTotal)
		s.cur.Advance(sectionGap)
	}

	if s.rep.OtherIncome != nil {
		s.section(*s.rep.OtherIncome)
	}
	if s.rep.Profit != nil {
		s.totalLine(*s.rep.Profit)
		s.target(profitTarget)
	}
	return s.doc.Error()
}

func (s *periodStrategy) title() {
	s.doc.SetFont(fontFamily, "B", titleFontSize)
	s.doc.SetXY(pageMargin, s.cur.y)
	s.doc.CellFormat(s.geo.labelW+s.geo.valueW+s.geo.percentW, headerRowHeight,
		s.tr("Profit & Loss"), "", 0, "L", false, 0, "")
	s.cur.Advance(headerRowHeight)

	subtitle := s.rep.Basis
	if subtitle != "" && s.rep.Currency != "" {
		subtitle += " basis, " + s.rep.Currency
	} else if s.rep.Currency != "" {
		subtitle = s.rep.Currency
	}
	if subtitle != "" {
		s.doc.SetFont(fontFamily, "", subtitleFontSize)
		s.doc.SetTextColor(110, 110, 110)
		s.doc.SetXY(pageMargin, s.cur.y)
		s.doc.CellFormat(s.geo.labelW, columnsRowHeight, s.tr(subtitle), "", 0, "L", false, 0, "")
		s.doc.SetTextColor(0, 0, 0)
		s.cur.Advance(columnsRowHeight)
	}
	s.cur.Advance(sectionGap)
}

// section draws header, column headers, items, total, in that fixed order.
func (s *periodStrategy) section(sec report.Section) {
	s.sectionHeader(sec.Header)
	s.columnHeaders()
	for _, item := range sec.Items {
		s.itemRow(item)
	}
	if sec.Total != nil {
		s.totalLine(*sec.Total)
	}
	s.cur.Advance(sectionGap)
}

func (s *periodStrategy) expenseSection(sub report.ExpenseSection) {
	s.sectionHeader(sub.Header)
	if len(sub.Items) > 0 {
		s.columnHeaders()
		for _, item := range sub.Items {
			s.itemRow(item)
		}
	}
	if sub.Total != nil {
		s.totalLine(*sub.Total)
	}
	s.cur.Advance(sectionGap)
}

func (s *periodStrategy) sectionHeader(text string) {
	s.doc.SetFont(fontFamily, "B", sectionFontSize)
	if s.cur.CheckPageBreak(headerRowHeight + columnsRowHeight + rowHeight) {
		s.doc.SetFont(fontFamily, "B", sectionFontSize)
	}
	s.doc.SetXY(pageMargin, s.cur.y)
	s.doc.CellFormat(s.geo.labelW, headerRowHeight, s.tr(text), "", 0, "L", false, 0, "")
	s.cur.Advance(headerRowHeight)
}

func (s *periodStrategy) columnHeaders() {
	s.doc.SetFont(fontFamily, "B", columnsFontSize)
	if s.cur.CheckPageBreak(columnsRowHeight) {
		s.doc.SetFont(fontFamily, "B", columnsFontSize)
	}
	s.doc.SetTextColor(110, 110, 110)
	s.doc.SetXY(pageMargin+s.geo.labelW, s.cur.y)
	s.doc.CellFormat(s.geo.valueW, columnsRowHeight, s.tr("Amount"), "", 0, "R", false, 0, "")
	s.doc.CellFormat(s.geo.percentW, columnsRowHeight, s.tr("% of Income"), "", 0, "R", false, 0, "")
	s.doc.SetTextColor(0, 0, 0)
	s.cur.Advance(columnsRowHeight)
}

func (s *periodStrategy) itemRow(item report.Item) {
	s.row(item.Label, item.Indent, item.Value, false)
}

func (s *periodStrategy) totalLine(total report.TotalLine) {
	s.row(total.Label, 0, total.Value, true)
	if total.Important {
		// a thin rule under the headline figures
		s.doc.SetDrawColor(60, 60, 60)
		s.doc.Line(pageMargin, s.cur.y, pageMargin+s.geo.labelW+s.geo.valueW+s.geo.percentW, s.cur.y)
	}
}

func (s *periodStrategy) row(label string, indent int, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	s.doc.SetFont(fontFamily, style, itemFontSize)

	x := pageMargin + float64(indent)*indentStep
	labelWidth := s.geo.labelW - float64(indent)*indentStep
	lines := wrapLabel(s.doc, s.tr(label), labelWidth)
	required := float64(len(lines)) * rowHeight

	if s.cur.CheckPageBreak(required) {
		s.doc.SetFont(fontFamily, style, itemFontSize)
	}

	for i, line := range lines {
		s.doc.SetXY(x, s.cur.y+float64(i)*rowHeight)
		s.doc.CellFormat(labelWidth, rowHeight, line, "", 0, "L", false, 0, "")
	}

	s.doc.SetXY(pageMargin+s.geo.labelW, s.cur.y)
	s.doc.CellFormat(s.geo.valueW, rowHeight, s.tr(s.opts.symbol()+formatAmount(value)), "", 0, "R", false, 0, "")
	s.doc.CellFormat(s.geo.percentW, rowHeight, percentOf(value, s.income), "", 0, "R", false, 0, "")
	s.cur.Advance(required)
}

// target prints the "Target: N%" annotation beneath the preceding total.
func (s *periodStrategy) target(pct float64) {
	s.doc.SetFont(fontFamily, "I", targetFontSize)
	if s.cur.CheckPageBreak(rowHeight) {
		s.doc.SetFont(fontFamily, "I", targetFontSize)
	}
	s.doc.SetTextColor(110, 110, 110)
	s.doc.SetXY(pageMargin+s.geo.labelW+s.geo.valueW, s.cur.y)
	s.doc.CellFormat(s.geo.percentW, rowHeight, s.tr(fmt.Sprintf("Target: %g%%", pct)), "", 0, "R", false, 0, "")
	s.doc.SetTextColor(0, 0, 0)
	s.cur.Advance(rowHeight)
}
