// Package ui holds the layout shared by the bordered panels.
package ui

const (
	// BorderSize is the space a rounded border takes, across and down.
	BorderSize = 2
	// HeaderHeight covers the title row and the separator under it.
	HeaderHeight = 2
	// PanelOverhead is the number of rows of a panel that are not content.
	PanelOverhead = BorderSize + HeaderHeight
	// StatusHeight is the status line (or console) under the panels.
	StatusHeight = 1
)

// Panel is embedded by bordered components for their size and focus.
type Panel struct {
	width, height int
	focused       bool
}

func (p *Panel) SetFocused(focused bool) {
	p.focused = focused
}

func (p Panel) Focused() bool {
	return p.focused
}

// SetSize sets the outer dimensions, border included.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p Panel) Width() int {
	return p.width
}

func (p Panel) Height() int {
	return p.height
}

// InnerWidth returns the columns inside the border.
func (p Panel) InnerWidth() int {
	return max(p.width-BorderSize, 0)
}

// BodyHeight returns the rows left for content under the header.
func (p Panel) BodyHeight() int {
	return max(p.height-PanelOverhead, 0)
}
