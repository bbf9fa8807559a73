// Package cursor tracks a selection and scroll window over a list whose
// length and visible height change over time.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // First visible item index
	margin int // Items kept visible above/below the cursor
	length int
	height int
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the configured scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// Len returns the list length last set with SetBounds.
func (c Cursor) Len() int {
	return c.length
}

// Height returns the visible height last set with SetBounds.
func (c Cursor) Height() int {
	return c.height
}

// SetMargin updates the scroll margin.
func (c *Cursor) SetMargin(margin int) {
	c.margin = max(margin, 0)
	c.ensureVisible()
}

// SetBounds records a new list length and visible height, clamping the
// cursor into the list.
func (c *Cursor) SetBounds(length, height int) {
	c.length = max(length, 0)
	c.height = max(height, 0)
	c.pos = clamp(c.pos, c.length-1)
	c.ensureVisible()
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta int) {
	c.Jump(c.pos + delta)
}

// Jump sets the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos int) {
	if c.length == 0 {
		return
	}
	c.pos = clamp(pos, c.length-1)
	c.ensureVisible()
}

// JumpFromEnd places the cursor n items before the end; 1 is the last item.
func (c *Cursor) JumpFromEnd(n int) {
	c.Jump(c.length - n)
}

// JumpPercent moves to the item at percent of the list (0 to 100).
func (c *Cursor) JumpPercent(percent int) {
	if c.length == 0 {
		return
	}
	percent = min(max(percent, 0), 100)
	c.Jump((c.length - 1) * percent / 100)
}

// HalfPages moves by n half screens; negative n moves up.
func (c *Cursor) HalfPages(n int) {
	c.Move(n * max(c.height/2, 1))
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange() (start, end int) {
	if c.length == 0 || c.height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+c.height, c.length)
}

// Reset moves the cursor back to the first item.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// effectiveMargin shrinks the margin on short screens so that the cursor
// can still reach every row.
func (c Cursor) effectiveMargin() int {
	return min(c.margin, max((c.height-1)/2, 0))
}

func (c *Cursor) ensureVisible() {
	if c.height <= 0 || c.length == 0 {
		c.offset = 0
		return
	}
	m := c.effectiveMargin()

	if c.pos < c.offset+m {
		c.offset = c.pos - m
	}
	if c.pos >= c.offset+c.height-m {
		c.offset = c.pos - c.height + m + 1
	}

	c.offset = clamp(c.offset, max(c.length-c.height, 0))
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < 0 {
		return 0
	}
	return v
}
