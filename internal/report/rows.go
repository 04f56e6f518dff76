package report

import "strings"

// zeroValue is the hard default used whenever no value source is valid.
const zeroValue = "0.00"

// rowKind is the classified shape of a RawRow. Shape is decided once at the
// tree boundary; the transformers dispatch on it instead of re-probing fields.
type rowKind int

const (
	rowUnknown rowKind = iota
	rowLeaf            // data row: ColData present, type empty or "Data"
	rowBranch          // header row: Header.ColData plus nested Rows.Row
)

func rowKindOf(row RawRow) rowKind {
	switch {
	case len(row.ColData) > 0 && (row.Type == "" || row.Type == "Data"):
		return rowLeaf
	case row.Header != nil && len(row.Header.ColData) > 0 && row.Rows != nil && len(row.Rows.Row) > 0:
		return rowBranch
	default:
		return rowUnknown
	}
}

// isValidValue reports whether s can serve as a value source. Empty and zero
// are both "absent" for precedence purposes, though zero still renders as zero
// once no better source exists.
func isValidValue(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "0" && s != "0.00"
}

// colAt returns the value at index i, or "" when the column is missing.
func colAt(cols []RawColData, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i].Value)
}

// lastCol returns the trailing column after the label, or "" when the list
// holds nothing beyond the label. In single-period reports the trailing column
// is the row's total.
func lastCol(cols []RawColData) string {
	if len(cols) < 2 {
		return ""
	}
	return strings.TrimSpace(cols[len(cols)-1].Value)
}

func leafLabel(row RawRow) string { return colAt(row.ColData, 0) }
func leafValue(row RawRow) string { return lastCol(row.ColData) }

func headerLabel(row RawRow) string {
	if row.Header == nil {
		return ""
	}
	return colAt(row.Header.ColData, 0)
}

func headerValue(row RawRow) string {
	if row.Header == nil {
		return ""
	}
	return lastCol(row.Header.ColData)
}

func summaryLabel(row RawRow) string {
	if row.Summary == nil {
		return ""
	}
	return colAt(row.Summary.ColData, 0)
}

func summaryValue(row RawRow) string {
	if row.Summary == nil {
		return ""
	}
	return lastCol(row.Summary.ColData)
}

// rollupValue resolves a branch row's display value: Summary over Header over
// the hard zero default.
func rollupValue(row RawRow) string {
	if v := summaryValue(row); isValidValue(v) {
		return v
	}
	if v := headerValue(row); isValidValue(v) {
		return v
	}
	return zeroValue
}

// childRows returns the nested rows, or nil for leaves.
func childRows(row RawRow) []RawRow {
	if row.Rows == nil {
		return nil
	}
	return row.Rows.Row
}

// sliceValues extracts n period values starting after the label column,
// zero-filling columns the row does not carry, plus the trailing total.
func sliceValues(cols []RawColData, n int) (values []string, total string) {
	values = make([]string, n)
	for i := 0; i < n; i++ {
		v := colAt(cols, i+1)
		if v == "" {
			v = zeroValue
		}
		values[i] = v
	}
	total = colAt(cols, n+1)
	if total == "" {
		total = lastCol(cols)
	}
	if total == "" {
		total = zeroValue
	}
	return values, total
}

// zeroValues returns an n-length slice of hard zeros.
func zeroValues(n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = zeroValue
	}
	return values
}
