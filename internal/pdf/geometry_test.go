package pdf

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
)

func TestMonthLabelWidth_Breakpoints(t *testing.T) {
	tests := []struct {
		months int
		want   float64
	}{
		{1, 80},
		{2, 60},
		{3, 60},
		{4, 45},
		{5, 45},
		{6, 32},
		{12, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, monthLabelWidth(tt.months), "months=%d", tt.months)
	}

	// monotonic: never wider with more columns
	prev := monthLabelWidth(1)
	for n := 2; n <= 12; n++ {
		w := monthLabelWidth(n)
		assert.LessOrEqual(t, w, prev)
		prev = w
	}
}

func TestNewPeriodGeometry_RatiosSumToWhole(t *testing.T) {
	geo := newPeriodGeometry(180)
	assert.InDelta(t, 180, geo.labelW+geo.valueW+geo.percentW, 0.0001)
	assert.Greater(t, geo.labelW, geo.valueW)
}

func TestWrapLabel(t *testing.T) {
	doc := fpdf.New(fpdf.OrientationPortrait, "mm", "A4", "")
	doc.AddPage()
	doc.SetFont(fontFamily, "", itemFontSize)

	t.Run("short label stays on one line", func(t *testing.T) {
		lines := wrapLabel(doc, "Rent", 60)
		assert.Equal(t, []string{"Rent"}, lines)
	})

	t.Run("empty label yields one empty line", func(t *testing.T) {
		lines := wrapLabel(doc, "", 60)
		assert.Equal(t, []string{""}, lines)
	})

	t.Run("long label wraps", func(t *testing.T) {
		long := strings.Repeat("Subscriptions and Memberships ", 4)
		lines := wrapLabel(doc, long, 40)
		assert.Greater(t, len(lines), 1)
	})
}
