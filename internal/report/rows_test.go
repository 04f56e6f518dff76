package report

import "testing"

// Builders shared across the package tests.

func dataRow(cols ...string) RawRow {
	cd := make([]RawColData, len(cols))
	for i, c := range cols {
		cd[i] = RawColData{Value: c}
	}
	return RawRow{ColData: cd}
}

func colList(cols ...string) *RawColList {
	cd := make([]RawColData, len(cols))
	for i, c := range cols {
		cd[i] = RawColData{Value: c}
	}
	return &RawColList{ColData: cd}
}

func branchRow(label string, children ...RawRow) RawRow {
	return RawRow{
		Header: colList(label),
		Rows:   &RawRows{Row: children},
	}
}

func withSummary(row RawRow, cols ...string) RawRow {
	row.Summary = colList(cols...)
	return row
}

func withHeaderValues(row RawRow, cols ...string) RawRow {
	row.Header = colList(cols...)
	return row
}

func TestRowKindOf(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want rowKind
	}{
		{
			name: "data row without type",
			row:  dataRow("Sales", "100.00"),
			want: rowLeaf,
		},
		{
			name: "data row with explicit Data type",
			row:  RawRow{ColData: []RawColData{{Value: "Sales"}}, Type: "Data"},
			want: rowLeaf,
		},
		{
			name: "data row with foreign type",
			row:  RawRow{ColData: []RawColData{{Value: "Sales"}}, Type: "Section"},
			want: rowUnknown,
		},
		{
			name: "header with children",
			row:  branchRow("Office Expenses", dataRow("Paper", "5.00")),
			want: rowBranch,
		},
		{
			name: "header without children",
			row:  RawRow{Header: colList("Office Expenses")},
			want: rowUnknown,
		},
		{
			name: "children without header",
			row:  RawRow{Rows: &RawRows{Row: []RawRow{dataRow("Paper", "5.00")}}},
			want: rowUnknown,
		},
		{
			name: "empty row",
			row:  RawRow{},
			want: rowUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rowKindOf(tt.row); got != tt.want {
				t.Errorf("rowKindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"100.00", true},
		{"-3.50", true},
		{"0", false},
		{"0.00", false},
		{"", false},
		{"  ", false},
		{" 42.00 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := isValidValue(tt.value); got != tt.want {
				t.Errorf("isValidValue(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRollupValue_Precedence(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want string
	}{
		{
			name: "summary wins over header",
			row:  withSummary(withHeaderValues(RawRow{}, "Label", "10.00"), "Total", "20.00"),
			want: "20.00",
		},
		{
			name: "invalid summary falls back to header",
			row:  withSummary(withHeaderValues(RawRow{}, "Label", "10.00"), "Total", "0.00"),
			want: "10.00",
		},
		{
			name: "zero is absent, not zero",
			row:  withSummary(withHeaderValues(RawRow{}, "Label", "0"), "Total", "0.00"),
			want: "0.00",
		},
		{
			name: "nothing anywhere",
			row:  RawRow{},
			want: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rollupValue(tt.row); got != tt.want {
				t.Errorf("rollupValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSliceValues(t *testing.T) {
	cols := []RawColData{
		{Value: "Sales"}, {Value: "10.00"}, {Value: "20.00"}, {Value: "30.00"},
	}

	values, total := sliceValues(cols, 2)
	if len(values) != 2 {
		t.Fatalf("len(values) = %d, want 2", len(values))
	}
	if values[0] != "10.00" || values[1] != "20.00" {
		t.Errorf("values = %v, want [10.00 20.00]", values)
	}
	if total != "30.00" {
		t.Errorf("total = %q, want %q", total, "30.00")
	}
}

func TestSliceValues_ZeroFillsMissingColumns(t *testing.T) {
	cols := []RawColData{{Value: "Sales"}, {Value: "10.00"}}

	values, total := sliceValues(cols, 3)
	if len(values) != 3 {
		t.Fatalf("len(values) = %d, want 3", len(values))
	}
	if values[0] != "10.00" || values[1] != "0.00" || values[2] != "0.00" {
		t.Errorf("values = %v, want [10.00 0.00 0.00]", values)
	}
	if total != "10.00" {
		t.Errorf("total = %q, want %q", total, "10.00")
	}
}
