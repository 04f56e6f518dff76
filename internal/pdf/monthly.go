package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"plreport/internal/report"
)

// monthlyStrategy renders by-month reports: one column per month plus a total
// column. Per-month percentages divide by that month's income; the total
// column's percentage divides by the period's aggregate income. The two
// denominators are different on purpose.
type monthlyStrategy struct {
	doc  *fpdf.Fpdf
	cur  *cursor
	tr   func(string) string
	rep  *report.MonthlyReport
	opts Options

	labelW       float64
	colW         float64
	monthIncome  []decimal.Decimal
	periodIncome decimal.Decimal
}

func (s *monthlyStrategy) render() error {
	n := len(s.rep.Months)
	pageWidth, _ := s.doc.GetPageSize()
	usable := pageWidth - 2*pageMargin
	s.labelW = monthLabelWidth(n)
	s.colW = (usable - s.labelW) / float64(n+1)

	s.monthIncome = make([]decimal.Decimal, n)
	if s.rep.Income != nil && s.rep.Income.Total != nil {
		for i := 0; i < n && i < len(s.rep.Income.Total.Values); i++ {
			s.monthIncome[i] = parseAmount(s.rep.Income.Total.Values[i])
		}
		s.periodIncome = parseAmount(s.rep.Income.Total.Total)
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

func (s *monthlyStrategy) title() {
	s.doc.SetFont(fontFamily, "B", titleFontSize)
	s.doc.SetXY(pageMargin, s.cur.y)
	s.doc.CellFormat(s.labelW, headerRowHeight, s.tr("Profit & Loss by Month"), "", 0, "L", false, 0, "")
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
		s.doc.CellFormat(s.labelW, columnsRowHeight, s.tr(subtitle), "", 0, "L", false, 0, "")
		s.doc.SetTextColor(0, 0, 0)
		s.cur.Advance(columnsRowHeight)
	}
	s.cur.Advance(sectionGap)
}

func (s *monthlyStrategy) section(sec report.MonthlySection) {
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

func (s *monthlyStrategy) expenseSection(sub report.MonthlyExpenseSection) {
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

func (s *monthlyStrategy) sectionHeader(text string) {
	s.doc.SetFont(fontFamily, "B", sectionFontSize)
	if s.cur.CheckPageBreak(headerRowHeight + columnsRowHeight + rowHeight) {
		s.doc.SetFont(fontFamily, "B", sectionFontSize)
	}
	s.doc.SetXY(pageMargin, s.cur.y)
	s.doc.CellFormat(s.labelW, headerRowHeight, s.tr(text), "", 0, "L", false, 0, "")
	s.cur.Advance(headerRowHeight)
}

func (s *monthlyStrategy) columnHeaders() {
	s.doc.SetFont(fontFamily, "B", columnsFontSize)
	if s.cur.CheckPageBreak(columnsRowHeight) {
		s.doc.SetFont(fontFamily, "B", columnsFontSize)
	}
	s.doc.SetTextColor(110, 110, 110)
	s.doc.SetXY(pageMargin+s.labelW, s.cur.y)
	for _, month := range s.rep.Months {
		s.doc.CellFormat(s.colW, columnsRowHeight, s.tr(month), "", 0, "R", false, 0, "")
	}
	s.doc.CellFormat(s.colW, columnsRowHeight, s.tr("Total"), "", 0, "R", false, 0, "")
	s.doc.SetTextColor(0, 0, 0)
	s.cur.Advance(columnsRowHeight)
}

func (s *monthlyStrategy) itemRow(item report.MonthlyItem) {
	s.row(item.Label, item.Indent, item.Values, item.Total, false)
}

func (s *monthlyStrategy) totalLine(total report.MonthlyTotal) {
	s.row(total.Label, 0, total.Values, total.Total, true)
	if total.Important {
		right := pageMargin + s.labelW + float64(len(s.rep.Months)+1)*s.colW
		s.doc.SetDrawColor(60, 60, 60)
		s.doc.Line(pageMargin, s.cur.y, right, s.cur.y)
	}
}

// row draws the amounts line and, beneath it, a small percentage line. Month
// cells divide by their own month's income, the total cell by the aggregate.
func (s *monthlyStrategy) row(label string, indent int, values []string, total string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	s.doc.SetFont(fontFamily, style, monthlyFontSize)

	x := pageMargin + float64(indent)*indentStep
	labelWidth := s.labelW - float64(indent)*indentStep
	lines := wrapLabel(s.doc, s.tr(label), labelWidth)
	amountsHeight := float64(len(lines)) * rowHeight
	required := amountsHeight + percentRowHeight

	if s.cur.CheckPageBreak(required) {
		s.doc.SetFont(fontFamily, style, monthlyFontSize)
	}

	for i, line := range lines {
		s.doc.SetXY(x, s.cur.y+float64(i)*rowHeight)
		s.doc.CellFormat(labelWidth, rowHeight, line, "", 0, "L", false, 0, "")
	}

	s.doc.SetXY(pageMargin+s.labelW, s.cur.y)
	for i := 0; i < len(s.rep.Months); i++ {
		v := zeroAmount
		if i < len(values) {
			v = values[i]
		}
		s.doc.CellFormat(s.colW, rowHeight, s.tr(formatAmount(v)), "", 0, "R", false, 0, "")
	}
	s.doc.CellFormat(s.colW, rowHeight, s.tr(s.opts.symbol()+formatAmount(total)), "", 0, "R", false, 0, "")

	s.doc.SetFont(fontFamily, "", percentFontSize)
	s.doc.SetTextColor(110, 110, 110)
	s.doc.SetXY(pageMargin+s.labelW, s.cur.y+amountsHeight)
	for i := 0; i < len(s.rep.Months); i++ {
		pct := ""
		if i < len(values) {
			pct = percentOf(values[i], s.monthIncome[i])
		}
		s.doc.CellFormat(s.colW, percentRowHeight, pct, "", 0, "R", false, 0, "")
	}
	s.doc.CellFormat(s.colW, percentRowHeight, percentOf(total, s.periodIncome), "", 0, "R", false, 0, "")
	s.doc.SetTextColor(0, 0, 0)

	s.cur.Advance(required)
}

func (s *monthlyStrategy) target(pct float64) {
	s.doc.SetFont(fontFamily, "I", targetFontSize)
	if s.cur.CheckPageBreak(rowHeight) {
		s.doc.SetFont(fontFamily, "I", targetFontSize)
	}
	s.doc.SetTextColor(110, 110, 110)
	right := pageMargin + s.labelW + float64(len(s.rep.Months))*s.colW
	s.doc.SetXY(right, s.cur.y)
	s.doc.CellFormat(s.colW, rowHeight, s.tr(fmt.Sprintf("Target: %g%%", pct)), "", 0, "R", false, 0, "")
	s.doc.SetTextColor(0, 0, 0)
	s.cur.Advance(rowHeight)
}
