package report

// Item is one rendered line of a single-period report.
type Item struct {
	Label  string
	Value  string
	Indent int // nesting depth; zero means top-level
}

// TotalLine is a section rollup.
type TotalLine struct {
	Label     string
	Value     string
	Important bool // bolded in the rendering (profit lines)
}

// Section is one top-level block of a single-period report.
type Section struct {
	Header string
	Items  []Item
	Total  *TotalLine
}

// ExpenseSection is one named grouping of line items inside Expenses.
type ExpenseSection struct {
	Header  string
	Items   []Item
	Total   *TotalLine
	Payroll bool // payroll sub-sections get the target annotation
}

// Report is the typed single-period model. Sections missing from the input
// stay nil and are simply omitted downstream.
type Report struct {
	Basis    string
	Currency string

	Income      *Section
	CostOfSales *Section
	OtherIncome *Section

	ExpenseSections []ExpenseSection
	ExpensesTotal   *TotalLine

	GrossProfit *TotalLine
	Profit      *TotalLine
}

// MonthlyItem is one rendered line of a by-month report.
type MonthlyItem struct {
	Label  string
	Values []string // one per month, zero-filled where absent
	Total  string
	Indent int
}

// MonthlyTotal is a section rollup in by-month mode.
type MonthlyTotal struct {
	Label     string
	Values    []string
	Total     string
	Important bool
}

// MonthlySection is one top-level block of a by-month report.
type MonthlySection struct {
	Header string
	Items  []MonthlyItem
	Total  *MonthlyTotal
}

// MonthlyExpenseSection is an Expenses sub-section in by-month mode.
type MonthlyExpenseSection struct {
	Header  string
	Items   []MonthlyItem
	Total   *MonthlyTotal
	Payroll bool
}

// MonthlyReport is the typed by-month model.
type MonthlyReport struct {
	Basis    string
	Currency string
	Months   []string

	Income      *MonthlySection
	CostOfSales *MonthlySection
	OtherIncome *MonthlySection

	ExpenseSections []MonthlyExpenseSection
	ExpensesTotal   *MonthlyTotal

	GrossProfit *MonthlyTotal
	Profit      *MonthlyTotal
}
