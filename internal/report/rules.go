package report

import "strings"

// Business constants for the one accounting taxonomy this engine serves.
// These encode known quirks of the upstream chart of accounts; they are
// configuration data, not parsing logic.
const (
	// duplicatePayrollLine is a mislabeled line that the upstream books carry
	// twice; it is suppressed wherever it appears.
	duplicatePayrollLine = "wages & payroll taxes"

	// subscriptionLine is suppressed only inside subscriptionSection.
	subscriptionSection = "computer & internet expenses"
	subscriptionLine    = "online subscription"

	// Inside travelSection a line is suppressed only when it names both a
	// travel and a conference component; either word alone is a real expense.
	travelSection  = "travel expenses"
	travelWord     = "travel"
	conferenceWord = "conference"

	// excludedExpenseSection is skipped wholesale before item processing.
	excludedExpenseSection = "payroll expenses"

	// fixedExpenseMarker collapses a sub-section to header + total only.
	fixedExpenseMarker = "fixed"
)

// Tracked Income keywords. Lines matching these are isolated into their own
// display rows instead of folding into a generic income category.
const (
	keywordShipping = "shipping"
	keywordDiscount = "discount"
)

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ShouldExcludeItem reports whether a line item is suppressed. The enclosing
// expense sub-section header scopes the second and third rules; the duplicate
// payroll line is suppressed regardless of context.
func ShouldExcludeItem(label, enclosingSection string) bool {
	l := norm(label)
	section := norm(enclosingSection)

	if strings.Contains(l, duplicatePayrollLine) {
		return true
	}
	if strings.Contains(section, subscriptionSection) && strings.Contains(l, subscriptionLine) {
		return true
	}
	if strings.Contains(section, travelSection) &&
		strings.Contains(l, travelWord) && strings.Contains(l, conferenceWord) {
		return true
	}
	return false
}

// ShouldExcludeSection reports whether an entire expense sub-section is
// skipped before any of its children are processed. The match is exact: other
// payroll-named sub-sections are real and must survive.
func ShouldExcludeSection(header string) bool {
	return norm(header) == excludedExpenseSection
}

// IsFixedExpenseSection reports whether a sub-section renders header and total
// only, with its items suppressed.
func IsFixedExpenseSection(header string) bool {
	return strings.Contains(norm(header), fixedExpenseMarker)
}

// IsPayrollLabel reports whether a header or sub-section name marks a payroll
// subtree. Payroll headers always surface as lines, even when empty.
func IsPayrollLabel(label string) bool {
	l := norm(label)
	return strings.Contains(l, "payroll") || strings.Contains(l, "wage")
}

// Keywords accumulates which tracked Income lines have surfaced during one
// top-to-bottom traversal. Flags only ever transition false to true.
type Keywords struct {
	Shipping bool
	Discount bool
}

// Both reports whether every tracked keyword has been seen.
func (k Keywords) Both() bool { return k.Shipping && k.Discount }

// Any reports whether at least one tracked keyword has been seen.
func (k Keywords) Any() bool { return k.Shipping || k.Discount }

// merge ORs two flag sets.
func (k Keywords) merge(o Keywords) Keywords {
	return Keywords{
		Shipping: k.Shipping || o.Shipping,
		Discount: k.Discount || o.Discount,
	}
}

// DetectKeywords scans a single label for the tracked keywords.
func DetectKeywords(label string) Keywords {
	l := norm(label)
	return Keywords{
		Shipping: strings.Contains(l, keywordShipping),
		Discount: strings.Contains(l, keywordDiscount),
	}
}

// SearchKeywords walks a subtree depth-first over data and header labels,
// merging hits into found. It short-circuits as soon as both keywords are
// accounted for.
func SearchKeywords(rows []RawRow, found Keywords) Keywords {
	for _, row := range rows {
		if found.Both() {
			return found
		}
		switch rowKindOf(row) {
		case rowLeaf:
			found = found.merge(DetectKeywords(leafLabel(row)))
		case rowBranch:
			found = found.merge(DetectKeywords(headerLabel(row)))
			if !found.Both() {
				found = SearchKeywords(childRows(row), found)
			}
		}
	}
	return found
}
