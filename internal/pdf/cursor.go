package pdf

// cursor tracks the vertical write position on the current page. It is scoped
// to a single render call and never shared.
type cursor struct {
	y          float64
	pageHeight float64
	margin     float64
	newPage    func()
}

func newCursor(pageHeight, margin float64, newPage func()) *cursor {
	return &cursor{
		y:          margin,
		pageHeight: pageHeight,
		margin:     margin,
		newPage:    newPage,
	}
}

// CheckPageBreak starts a new page when required height does not fit above the
// bottom margin, resets y to the top margin, and returns true. Font state does
// not survive a page break: every drawing routine re-applies its font after a
// true return.
func (c *cursor) CheckPageBreak(required float64) bool {
	if c.y+required > c.pageHeight-c.margin {
		if c.newPage != nil {
			c.newPage()
		}
		c.y = c.margin
		return true
	}
	return false
}

// Advance moves the cursor down by h.
func (c *cursor) Advance(h float64) { c.y += h }
