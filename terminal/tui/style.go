package tui

import "github.com/lixenwraith/tuikit/terminal"

// Style bundles resolved colors and attributes for cell writes
type Style struct {
	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.Color{}) && s.Bg == (terminal.Color{}) && s.Attr == terminal.AttrNone
}

// WithAttr returns a copy of the style with extra attributes set
func (s Style) WithAttr(a terminal.Attr) Style {
	s.Attr |= a
	return s
}
