package pdf

import "github.com/go-pdf/fpdf"

const (
	pageMargin = 15.0

	rowHeight        = 5.5
	headerRowHeight  = 7.0
	columnsRowHeight = 5.0
	percentRowHeight = 3.6
	sectionGap       = 4.0
	indentStep       = 4.0

	fontFamily       = "Helvetica"
	titleFontSize    = 16.0
	subtitleFontSize = 9.0
	sectionFontSize  = 11.0
	columnsFontSize  = 8.0
	itemFontSize     = 9.0
	monthlyFontSize  = 7.5
	percentFontSize  = 6.0
	targetFontSize   = 7.0

	// labels overflowing their column get one narrower re-wrap pass
	emergencyWrapRatio = 0.9
)

// periodGeometry is the fixed-ratio column split for single-period pages.
type periodGeometry struct {
	labelW   float64
	valueW   float64
	percentW float64
}

func newPeriodGeometry(usable float64) periodGeometry {
	return periodGeometry{
		labelW:   usable * 0.55,
		valueW:   usable * 0.25,
		percentW: usable * 0.20,
	}
}

// monthLabelWidth picks the label column width for n month columns: wide for a
// single month, tighter as the column count grows past 3 and past 5.
func monthLabelWidth(n int) float64 {
	switch {
	case n <= 1:
		return 80
	case n <= 3:
		return 60
	case n <= 5:
		return 45
	default:
		return 32
	}
}

// wrapLabel wraps a label to the column width. When the initial wrap still
// leaves an overflowing line, the whole label is re-wrapped against a narrower
// width instead of being clipped.
func wrapLabel(doc *fpdf.Fpdf, label string, width float64) []string {
	if label == "" {
		return []string{""}
	}
	lines := doc.SplitText(label, width)
	for _, line := range lines {
		if doc.GetStringWidth(line) > width {
			return doc.SplitText(label, width*emergencyWrapRatio)
		}
	}
	return lines
}
