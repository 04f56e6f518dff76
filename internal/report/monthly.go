package report

// The by-month transformer mirrors the single-period one case for case; every
// scalar value becomes a per-month slice plus a trailing total, sourced with
// the same precedence.

type monthlyContext struct {
	expenseSection string
	indent         int
	income         bool
	months         int
	found          Keywords
}

// summaryFirstValues resolves a branch row's values with Summary over Header
// over zero-fill precedence.
func summaryFirstValues(row RawRow, n int) ([]string, string) {
	if row.Summary != nil && len(row.Summary.ColData) > 1 {
		return sliceValues(row.Summary.ColData, n)
	}
	if row.Header != nil && len(row.Header.ColData) > 1 {
		return sliceValues(row.Header.ColData, n)
	}
	return zeroValues(n), zeroValue
}

// headerFirstValues resolves with Header over Summary over zero-fill, the
// precedence regular headers use when the header itself carries values.
func headerFirstValues(row RawRow, n int) ([]string, string) {
	if row.Header != nil && len(row.Header.ColData) > 1 {
		return sliceValues(row.Header.ColData, n)
	}
	if row.Summary != nil && len(row.Summary.ColData) > 1 {
		return sliceValues(row.Summary.ColData, n)
	}
	return zeroValues(n), zeroValue
}

func transformMonthlyRows(rows []RawRow, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	var items []MonthlyItem
	for _, row := range rows {
		var out []MonthlyItem
		out, ctx.found = transformMonthlyRow(row, ctx)
		items = append(items, out...)
	}
	return items, ctx.found
}

func transformMonthlyRow(row RawRow, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	switch rowKindOf(row) {
	case rowLeaf:
		return transformMonthlyLeaf(row, ctx)
	case rowBranch:
		return transformMonthlyBranch(row, ctx)
	default:
		return nil, ctx.found
	}
}

func transformMonthlyLeaf(row RawRow, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	label := leafLabel(row)
	if label == "" {
		return nil, ctx.found
	}
	if ShouldExcludeItem(label, ctx.expenseSection) {
		return nil, ctx.found
	}
	found := ctx.found
	if ctx.income {
		found = found.merge(DetectKeywords(label))
	}
	values, total := sliceValues(row.ColData, ctx.months)
	item := MonthlyItem{Label: label, Values: values, Total: total, Indent: ctx.indent}
	return []MonthlyItem{item}, found
}

func transformMonthlyBranch(row RawRow, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	label := headerLabel(row)

	if IsPayrollLabel(label) || IsPayrollLabel(ctx.expenseSection) {
		return transformMonthlyPayroll(row, label, ctx)
	}
	if ctx.income {
		return transformMonthlyIncome(row, label, ctx)
	}
	return transformMonthlyHeader(row, label, ctx)
}

func transformMonthlyPayroll(row RawRow, label string, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	values, total := headerFirstValues(row, ctx.months)
	items := []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}

	childCtx := ctx
	childCtx.indent++
	children, found := transformMonthlyRows(childRows(row), childCtx)
	return append(items, children...), found
}

func transformMonthlyIncome(row RawRow, label string, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	if ctx.found.Both() {
		if label == "" {
			label = summaryLabel(row)
		}
		if label == "" {
			return nil, ctx.found
		}
		values, total := summaryFirstValues(row, ctx.months)
		return []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}, ctx.found
	}

	if hit := DetectKeywords(label); hit.Any() {
		found := ctx.found.merge(hit)
		values, total := summaryFirstValues(row, ctx.months)
		return []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}, found
	}

	if sub := SearchKeywords(childRows(row), ctx.found); sub != ctx.found {
		values, total := summaryFirstValues(row, ctx.months)
		items := []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}
		childCtx := ctx
		childCtx.indent++
		childCtx.found = sub
		children, found := transformMonthlyRows(childRows(row), childCtx)
		return append(items, children...), found
	}

	if label == "" {
		label = summaryLabel(row)
	}
	if label == "" {
		return nil, ctx.found
	}
	values, total := summaryFirstValues(row, ctx.months)
	return []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}, ctx.found
}

func transformMonthlyHeader(row RawRow, label string, ctx monthlyContext) ([]MonthlyItem, Keywords) {
	if label == "" {
		label = summaryLabel(row)
	}
	if label == "" {
		return nil, ctx.found
	}
	if ShouldExcludeItem(label, ctx.expenseSection) {
		return nil, ctx.found
	}

	values, total := headerFirstValues(row, ctx.months)
	items := []MonthlyItem{{Label: label, Values: values, Total: total, Indent: ctx.indent}}

	childCtx := ctx
	childCtx.indent++
	children, found := transformMonthlyRows(childRows(row), childCtx)
	return append(items, children...), found
}
