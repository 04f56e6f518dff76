// Package report normalizes loosely-typed Profit & Loss documents, as produced
// by the accounting API, into a typed section/item model.
//
// The input schema varies across source companies and report modes, so every
// accessor here degrades instead of failing: missing labels drop the row,
// missing values fall back to zero, rows of no recognizable shape are ignored.
package report

import "strings"

// RawReport is the accounting API's Profit & Loss payload, consumed as-is.
type RawReport struct {
	Header  RawReportHeader `json:"Header"`
	Columns RawColumns      `json:"Columns"`
	Rows    RawRows         `json:"Rows"`
}

// RawReportHeader carries report-level metadata.
type RawReportHeader struct {
	ReportBasis        string `json:"ReportBasis"`
	Currency           string `json:"Currency"`
	SummarizeColumnsBy string `json:"SummarizeColumnsBy"`
}

type RawColumns struct {
	Column []RawColumn `json:"Column"`
}

type RawColumn struct {
	ColTitle string          `json:"ColTitle"`
	ColType  string          `json:"ColType"`
	MetaData []RawColumnMeta `json:"MetaData"`
}

type RawColumnMeta struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type RawRows struct {
	Row []RawRow `json:"Row"`
}

// RawRow is a report tree node. Any combination of the fields may be present;
// see rowKindOf for how the shapes are told apart.
type RawRow struct {
	ColData []RawColData `json:"ColData"`
	Header  *RawColList  `json:"Header"`
	Summary *RawColList  `json:"Summary"`
	Rows    *RawRows     `json:"Rows"`
	Group   string       `json:"group"`
	Type    string       `json:"type"`
}

type RawColList struct {
	ColData []RawColData `json:"ColData"`
}

type RawColData struct {
	Value string `json:"value"`
	ID    string `json:"id,omitempty"`
}

// IsMonthly reports whether the document is summarized by month.
func (r *RawReport) IsMonthly() bool {
	return strings.EqualFold(r.Header.SummarizeColumnsBy, "Month")
}

// Months returns the month column titles, in report order. A column counts as
// a month iff it carries both StartDate and EndDate metadata; the trailing
// total column carries neither.
func (r *RawReport) Months() []string {
	if !r.IsMonthly() {
		return nil
	}
	var months []string
	for _, col := range r.Columns.Column {
		var hasStart, hasEnd bool
		for _, md := range col.MetaData {
			switch md.Name {
			case "StartDate":
				hasStart = true
			case "EndDate":
				hasEnd = true
			}
		}
		if hasStart && hasEnd {
			months = append(months, col.ColTitle)
		}
	}
	return months
}
