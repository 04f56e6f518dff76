package report

// transformContext is threaded through one depth-first traversal. It is a
// value: every call receives its own copy and returns the keyword flags it
// accumulated, which the caller passes on to the next sibling. That keeps the
// single-pass, left-to-right semantics without shared mutable state.
type transformContext struct {
	expenseSection string // enclosing expense sub-section name, scopes exclusions
	indent         int
	income         bool
	found          Keywords
}

// transformRows flattens a row list into items, threading the keyword
// accumulator across siblings.
func transformRows(rows []RawRow, ctx transformContext) ([]Item, Keywords) {
	var items []Item
	for _, row := range rows {
		var out []Item
		out, ctx.found = transformRow(row, ctx)
		items = append(items, out...)
	}
	return items, ctx.found
}

func transformRow(row RawRow, ctx transformContext) ([]Item, Keywords) {
	switch rowKindOf(row) {
	case rowLeaf:
		return transformLeaf(row, ctx)
	case rowBranch:
		return transformBranch(row, ctx)
	default:
		// structural noise, dropped
		return nil, ctx.found
	}
}

func transformLeaf(row RawRow, ctx transformContext) ([]Item, Keywords) {
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
	value := leafValue(row)
	if value == "" {
		value = zeroValue
	}
	return []Item{{Label: label, Value: value, Indent: ctx.indent}}, found
}

func transformBranch(row RawRow, ctx transformContext) ([]Item, Keywords) {
	label := headerLabel(row)

	// Payroll subtrees always surface, even when every value source is empty.
	if IsPayrollLabel(label) || IsPayrollLabel(ctx.expenseSection) {
		return transformPayrollBranch(row, label, ctx)
	}
	if ctx.income {
		return transformIncomeBranch(row, label, ctx)
	}
	return transformHeaderBranch(row, label, ctx)
}

// transformPayrollBranch emits the payroll header as its own line and then
// expands its children one level deeper.
func transformPayrollBranch(row RawRow, label string, ctx transformContext) ([]Item, Keywords) {
	value := headerValue(row)
	if !isValidValue(value) {
		if v := summaryValue(row); isValidValue(v) {
			value = v
		} else {
			value = zeroValue
		}
	}
	items := []Item{{Label: label, Value: value, Indent: ctx.indent}}

	childCtx := ctx
	childCtx.indent++
	children, found := transformRows(childRows(row), childCtx)
	return append(items, children...), found
}

// transformIncomeBranch applies the keyword bucketing policy, in priority
// order: collapse once both keywords are accounted for, isolate a header that
// itself matches, expand a subtree that matches somewhere below, otherwise
// fall through to the plain header path.
func transformIncomeBranch(row RawRow, label string, ctx transformContext) ([]Item, Keywords) {
	if ctx.found.Both() {
		// Both tracked lines already surfaced earlier in this traversal;
		// everything else folds into its rollup, no expansion.
		if label == "" {
			label = summaryLabel(row)
		}
		if label == "" {
			return nil, ctx.found
		}
		return []Item{{Label: label, Value: rollupValue(row), Indent: ctx.indent}}, ctx.found
	}

	if hit := DetectKeywords(label); hit.Any() {
		// The header itself is a tracked line: isolate it as a single leaf,
		// children are not expanded.
		found := ctx.found.merge(hit)
		return []Item{{Label: label, Value: rollupValue(row), Indent: ctx.indent}}, found
	}

	if sub := SearchKeywords(childRows(row), ctx.found); sub != ctx.found {
		// A descendant is a tracked line: emit the header and expand normally
		// so the matching leaf gets its own row.
		items := []Item{{Label: label, Value: rollupValue(row), Indent: ctx.indent}}
		childCtx := ctx
		childCtx.indent++
		childCtx.found = sub
		children, found := transformRows(childRows(row), childCtx)
		return append(items, children...), found
	}

	// No keyword anywhere in this subtree: the whole category folds into one
	// plain line, no expansion.
	if label == "" {
		label = summaryLabel(row)
	}
	if label == "" {
		return nil, ctx.found
	}
	return []Item{{Label: label, Value: rollupValue(row), Indent: ctx.indent}}, ctx.found
}

// transformHeaderBranch is the regular section-header path.
func transformHeaderBranch(row RawRow, label string, ctx transformContext) ([]Item, Keywords) {
	if label == "" {
		// Fall back to the summary's label; the scoped exclusion has to be
		// re-checked because it may differ from the header label.
		label = summaryLabel(row)
	}
	if label == "" {
		return nil, ctx.found
	}
	if ShouldExcludeItem(label, ctx.expenseSection) {
		return nil, ctx.found
	}

	value := headerValue(row)
	if !isValidValue(value) {
		if v := summaryValue(row); isValidValue(v) {
			value = v
		} else {
			value = zeroValue
		}
	}
	items := []Item{{Label: label, Value: value, Indent: ctx.indent}}

	childCtx := ctx
	childCtx.indent++
	children, found := transformRows(childRows(row), childCtx)
	return append(items, children...), found
}
