package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePeriodReport(rows ...RawRow) *RawReport {
	return &RawReport{
		Header: RawReportHeader{
			ReportBasis:        "Accrual",
			Currency:           "USD",
			SummarizeColumnsBy: "Total",
		},
		Rows: RawRows{Row: rows},
	}
}

func TestParse_IncomeEndToEnd(t *testing.T) {
	raw := singlePeriodReport(
		withSummary(
			branchRow("Income", dataRow("Sales", "100.00")),
			"Total Income", "100.00",
		),
	)

	rep := Parse(raw)

	require.NotNil(t, rep.Income)
	assert.Equal(t, "Income", rep.Income.Header)
	require.Len(t, rep.Income.Items, 1)
	assert.Equal(t, Item{Label: "Sales", Value: "100.00"}, rep.Income.Items[0])
	require.NotNil(t, rep.Income.Total)
	assert.Equal(t, "Total Income", rep.Income.Total.Label)
	assert.Equal(t, "100.00", rep.Income.Total.Value)
}

func TestParse_MissingSectionsStayNil(t *testing.T) {
	raw := singlePeriodReport(
		withSummary(branchRow("Income", dataRow("Sales", "10.00")), "Total Income", "10.00"),
	)

	rep := Parse(raw)

	assert.Nil(t, rep.CostOfSales)
	assert.Nil(t, rep.OtherIncome)
	assert.Nil(t, rep.GrossProfit)
	assert.Nil(t, rep.Profit)
	assert.Empty(t, rep.ExpenseSections)
	assert.Nil(t, rep.ExpensesTotal)
}

func TestParse_LastSectionWins(t *testing.T) {
	raw := singlePeriodReport(
		withSummary(branchRow("Income", dataRow("Old Sales", "1.00")), "Total Income", "1.00"),
		withSummary(branchRow("Income", dataRow("New Sales", "2.00")), "Total Income", "2.00"),
	)

	rep := Parse(raw)

	require.NotNil(t, rep.Income)
	require.Len(t, rep.Income.Items, 1)
	assert.Equal(t, "New Sales", rep.Income.Items[0].Label)
}

func TestParse_ProfitRowsCaptureSummaryOnly(t *testing.T) {
	raw := singlePeriodReport(
		withSummary(RawRow{}, "Gross Profit", "60.00"),
		withSummary(RawRow{}, "Net Income", "25.00"),
	)

	rep := Parse(raw)

	require.NotNil(t, rep.GrossProfit)
	assert.Equal(t, "Gross Profit", rep.GrossProfit.Label)
	assert.Equal(t, "60.00", rep.GrossProfit.Value)
	assert.True(t, rep.GrossProfit.Important)

	require.NotNil(t, rep.Profit)
	assert.Equal(t, "25.00", rep.Profit.Value)
	assert.True(t, rep.Profit.Important)
}

func expensesRow() RawRow {
	return withSummary(
		branchRow("Expenses",
			withSummary(
				branchRow("Office Expenses",
					dataRow("Rent", "1200.00"),
					dataRow("Utilities", "300.00"),
				),
				"Total Office Expenses", "1500.00",
			),
			withSummary(
				branchRow("Payroll Expenses", dataRow("Ghost Wages", "1.00")),
				"Total Payroll Expenses", "1.00",
			),
			withSummary(
				branchRow("Wages & Payroll Expenses", dataRow("Salaries", "5000.00")),
				"Total Wages & Payroll Expenses", "5000.00",
			),
			withSummary(
				branchRow("Fixed Expenses", dataRow("Insurance", "200.00")),
				"Total Fixed Expenses", "200.00",
			),
			branchRow("Notes", dataRow("Not an expense grouping", "0.00")),
		),
		"Total Expenses", "6700.00",
	)
}

func TestParse_ExpensesSubSections(t *testing.T) {
	rep := Parse(singlePeriodReport(expensesRow()))

	require.Len(t, rep.ExpenseSections, 3)

	office := rep.ExpenseSections[0]
	assert.Equal(t, "Office Expenses", office.Header)
	assert.Len(t, office.Items, 2)
	require.NotNil(t, office.Total)
	assert.Equal(t, "1500.00", office.Total.Value)
	assert.False(t, office.Payroll)

	// the named payroll sub-section is skipped wholesale; the real
	// wages sub-section survives and is flagged
	wages := rep.ExpenseSections[1]
	assert.Equal(t, "Wages & Payroll Expenses", wages.Header)
	assert.True(t, wages.Payroll)

	fixed := rep.ExpenseSections[2]
	assert.Equal(t, "Fixed Expenses", fixed.Header)
	assert.Empty(t, fixed.Items, "fixed sub-sections render header and total only")
	require.NotNil(t, fixed.Total)
	assert.Equal(t, "200.00", fixed.Total.Value)

	require.NotNil(t, rep.ExpensesTotal)
	assert.Equal(t, "Total Expenses", rep.ExpensesTotal.Label)
	assert.Equal(t, "6700.00", rep.ExpensesTotal.Value)
}

func TestParse_ExpensesGrandTotalRequiresBothWords(t *testing.T) {
	raw := singlePeriodReport(
		withSummary(
			branchRow("Expenses",
				withSummary(branchRow("Office Expenses", dataRow("Rent", "1.00")), "Total Office Expenses", "1.00"),
			),
			"Grand Total", "1.00",
		),
	)

	rep := Parse(raw)
	assert.Nil(t, rep.ExpensesTotal)
}

func TestParse_FromJSON(t *testing.T) {
	payload := `{
		"Header": {"ReportBasis": "Cash", "Currency": "USD", "SummarizeColumnsBy": "Total"},
		"Columns": {"Column": [
			{"ColTitle": "", "ColType": "Account"},
			{"ColTitle": "Total", "ColType": "Money"}
		]},
		"Rows": {"Row": [
			{
				"Header": {"ColData": [{"value": "Income"}]},
				"Rows": {"Row": [
					{"ColData": [{"value": "Sales", "id": "1"}, {"value": "100.00"}], "type": "Data"}
				]},
				"Summary": {"ColData": [{"value": "Total Income"}, {"value": "100.00"}]},
				"group": "Income"
			},
			{
				"Summary": {"ColData": [{"value": "Net Income"}, {"value": "100.00"}]},
				"group": "NetIncome"
			}
		]}
	}`

	var raw RawReport
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	rep := Parse(&raw)

	require.NotNil(t, rep.Income)
	require.Len(t, rep.Income.Items, 1)
	assert.Equal(t, "Sales", rep.Income.Items[0].Label)
	require.NotNil(t, rep.Profit)
	assert.Equal(t, "100.00", rep.Profit.Value)
	assert.Equal(t, "Cash", rep.Basis)
	assert.Equal(t, "USD", rep.Currency)
}
