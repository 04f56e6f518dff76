package report

import "strings"

// Parse builds the typed single-period model in one linear pass over the
// top-level rows. Rows that classify to nothing are dropped; when two rows
// classify to the same section, the last one wins (the upstream behavior is
// preserved, not merged).
func Parse(raw *RawReport) *Report {
	rep := &Report{
		Basis:    raw.Header.ReportBasis,
		Currency: raw.Header.Currency,
	}

	for _, row := range raw.Rows.Row {
		switch Classify(row) {
		case SectionIncome:
			rep.Income = buildSection(row, true)
		case SectionCostOfSales:
			rep.CostOfSales = buildSection(row, false)
		case SectionOtherIncome:
			rep.OtherIncome = buildSection(row, false)
		case SectionExpenses:
			rep.ExpenseSections, rep.ExpensesTotal = buildExpenses(row)
		case SectionGrossProfit:
			rep.GrossProfit = summaryTotal(row, true)
		case SectionProfit:
			rep.Profit = summaryTotal(row, true)
		}
	}
	return rep
}

func buildSection(row RawRow, income bool) *Section {
	items, _ := transformRows(childRows(row), transformContext{income: income})
	return &Section{
		Header: headerLabel(row),
		Items:  items,
		Total:  summaryTotal(row, false),
	}
}

// summaryTotal captures a row's Summary as a total line, or nil when the row
// carries no labeled summary.
func summaryTotal(row RawRow, important bool) *TotalLine {
	label := summaryLabel(row)
	if label == "" {
		return nil
	}
	value := summaryValue(row)
	if value == "" {
		value = zeroValue
	}
	return &TotalLine{Label: label, Value: value, Important: important}
}

// buildExpenses walks the Expenses row's direct children as candidate
// sub-sections and captures the grand total from the row's own Summary.
func buildExpenses(row RawRow) ([]ExpenseSection, *TotalLine) {
	var sections []ExpenseSection
	for _, child := range childRows(row) {
		header := headerLabel(child)
		if !isExpenseSubSection(child, header) {
			continue
		}
		if ShouldExcludeSection(header) {
			continue
		}

		section := ExpenseSection{
			Header:  header,
			Total:   summaryTotal(child, false),
			Payroll: IsPayrollLabel(header),
		}
		if !IsFixedExpenseSection(header) {
			section.Items, _ = transformRows(childRows(child), transformContext{expenseSection: header})
		}
		sections = append(sections, section)
	}

	return sections, expensesGrandTotal(row)
}

// isExpenseSubSection: a direct child counts as a sub-section iff its header
// names an expense grouping and it actually nests rows.
func isExpenseSubSection(row RawRow, header string) bool {
	if rowKindOf(row) != rowBranch {
		return false
	}
	return strings.Contains(strings.ToUpper(header), "EXPENSE")
}

func expensesGrandTotal(row RawRow) *TotalLine {
	label := summaryLabel(row)
	upper := strings.ToUpper(label)
	if !strings.Contains(upper, "TOTAL") || !strings.Contains(upper, "EXPENSES") {
		return nil
	}
	value := summaryValue(row)
	if value == "" {
		value = zeroValue
	}
	return &TotalLine{Label: label, Value: value}
}

// ParseMonthly builds the typed by-month model. Month columns come from the
// document's column metadata; every item's value slice has exactly that many
// entries.
func ParseMonthly(raw *RawReport) *MonthlyReport {
	months := raw.Months()
	rep := &MonthlyReport{
		Basis:    raw.Header.ReportBasis,
		Currency: raw.Header.Currency,
		Months:   months,
	}
	n := len(months)

	for _, row := range raw.Rows.Row {
		switch Classify(row) {
		case SectionIncome:
			rep.Income = buildMonthlySection(row, true, n)
		case SectionCostOfSales:
			rep.CostOfSales = buildMonthlySection(row, false, n)
		case SectionOtherIncome:
			rep.OtherIncome = buildMonthlySection(row, false, n)
		case SectionExpenses:
			rep.ExpenseSections, rep.ExpensesTotal = buildMonthlyExpenses(row, n)
		case SectionGrossProfit:
			rep.GrossProfit = monthlySummaryTotal(row, true, n)
		case SectionProfit:
			rep.Profit = monthlySummaryTotal(row, true, n)
		}
	}
	return rep
}

func buildMonthlySection(row RawRow, income bool, months int) *MonthlySection {
	items, _ := transformMonthlyRows(childRows(row), monthlyContext{income: income, months: months})
	return &MonthlySection{
		Header: headerLabel(row),
		Items:  items,
		Total:  monthlySummaryTotal(row, false, months),
	}
}

func monthlySummaryTotal(row RawRow, important bool, months int) *MonthlyTotal {
	label := summaryLabel(row)
	if label == "" {
		return nil
	}
	values, total := summaryFirstValues(row, months)
	return &MonthlyTotal{Label: label, Values: values, Total: total, Important: important}
}

func buildMonthlyExpenses(row RawRow, months int) ([]MonthlyExpenseSection, *MonthlyTotal) {
	var sections []MonthlyExpenseSection
	for _, child := range childRows(row) {
		header := headerLabel(child)
		if !isExpenseSubSection(child, header) {
			continue
		}
		if ShouldExcludeSection(header) {
			continue
		}

		section := MonthlyExpenseSection{
			Header:  header,
			Total:   monthlySummaryTotal(child, false, months),
			Payroll: IsPayrollLabel(header),
		}
		if !IsFixedExpenseSection(header) {
			section.Items, _ = transformMonthlyRows(childRows(child), monthlyContext{expenseSection: header, months: months})
		}
		sections = append(sections, section)
	}

	var grand *MonthlyTotal
	label := summaryLabel(row)
	upper := strings.ToUpper(label)
	if strings.Contains(upper, "TOTAL") && strings.Contains(upper, "EXPENSES") {
		values, total := summaryFirstValues(row, months)
		grand = &MonthlyTotal{Label: label, Values: values, Total: total}
	}
	return sections, grand
}
