package app

import (
	"github.com/llehouerou/rove/internal/keymap"
)

func (m *Model) pagerScroll(_ keymap.Args, d keymap.Direction) error {
	m.pager.Scroll(d)
	return nil
}

func (m *Model) pagerTop(a keymap.Args) error {
	m.pager.Top(a.N(0))
	return nil
}

func (m *Model) pagerBottom(a keymap.Args) error {
	m.pager.Bottom(a.N(0))
	return nil
}

func (m *Model) pagerHalfPage(a keymap.Args, d keymap.Direction) error {
	m.pager.HalfPages(d.Mul(a.N(1)).Down)
	return nil
}

func (m *Model) pagerClose(keymap.Args) error {
	m.pager = nil
	return nil
}
