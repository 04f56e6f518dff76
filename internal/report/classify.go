package report

import "strings"

// SectionType identifies the top-level block a report row belongs to.
type SectionType int

const (
	SectionNone SectionType = iota
	SectionIncome
	SectionCostOfSales
	SectionExpenses
	SectionOtherIncome
	SectionProfit
	SectionGrossProfit
)

func (s SectionType) String() string {
	switch s {
	case SectionIncome:
		return "income"
	case SectionCostOfSales:
		return "cost_of_sales"
	case SectionExpenses:
		return "expenses"
	case SectionOtherIncome:
		return "other_income"
	case SectionProfit:
		return "profit"
	case SectionGrossProfit:
		return "gross_profit"
	default:
		return "none"
	}
}

// Classify maps a top-level row to its section. The group tag, when present,
// is machine-written and outranks nothing: each match step accepts either the
// human-readable text or the tag. First match wins; rows matching nothing are
// structural and carry no business meaning.
func Classify(row RawRow) SectionType {
	header := strings.ToUpper(headerLabel(row))
	summary := strings.ToUpper(summaryLabel(row))
	group := row.Group

	switch {
	case header == "INCOME" || strings.EqualFold(group, "Income"):
		return SectionIncome
	case strings.Contains(header, "COST OF GOODS SOLD") ||
		strings.Contains(header, "COST OF SALES") ||
		strings.EqualFold(group, "COGS"):
		return SectionCostOfSales
	case header == "EXPENSES" || strings.EqualFold(group, "Expenses"):
		return SectionExpenses
	case strings.Contains(header, "OTHER INCOME") || strings.EqualFold(group, "OtherIncome"):
		return SectionOtherIncome
	case summary == "PROFIT" || summary == "NET INCOME" || strings.EqualFold(group, "NetIncome"):
		return SectionProfit
	case strings.Contains(summary, "GROSS PROFIT") || strings.Contains(summary, "GROSS INCOME"):
		return SectionGrossProfit
	default:
		return SectionNone
	}
}
