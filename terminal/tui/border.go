package tui

import "github.com/lixenwraith/tuikit/terminal"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineASCII                   // +-+|++
)

// GlyphSet holds the six box drawing characters of a line style
type GlyphSet [6]rune

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box drawing character sets indexed by LineType
var boxChars = [...]GlyphSet{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineASCII:   {'+', '-', '+', '|', '+', '+'},
}

// Glyphs returns the glyph set for a line style on a capability tier.
// Total: tiers without unicode support substitute the ASCII set, and an
// out-of-range line style falls back to LineSingle.
func Glyphs(line LineType, tier terminal.Tier) GlyphSet {
	if !tier.Unicode() {
		return boxChars[LineASCII]
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}

// Edge selects which borders of a region to draw (bitmask)
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

const (
	EdgeNone Edge = 0
	EdgeAll       = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// Border describes a region border: edge selection, line style, and
// resolved draw style. Immutable once constructed.
type Border struct {
	Edges Edge
	Line  LineType
	Style Style
}

// Border draws the selected edges of b around the region boundary using
// the tier's glyph set. Corner glyphs appear where two selected edges
// meet. Regions too small to hold a border are left untouched.
func (r Region) Border(b Border, tier terminal.Tier) {
	if r.W < 2 || r.H < 2 || b.Edges == EdgeNone {
		return
	}

	chars := Glyphs(b.Line, tier)
	st := b.Style

	if b.Edges&EdgeTop != 0 {
		for x := 0; x < r.W; x++ {
			r.SetCell(x, 0, chars[boxH], st)
		}
	}
	if b.Edges&EdgeBottom != 0 {
		for x := 0; x < r.W; x++ {
			r.SetCell(x, r.H-1, chars[boxH], st)
		}
	}
	if b.Edges&EdgeLeft != 0 {
		for y := 0; y < r.H; y++ {
			r.SetCell(0, y, chars[boxV], st)
		}
	}
	if b.Edges&EdgeRight != 0 {
		for y := 0; y < r.H; y++ {
			r.SetCell(r.W-1, y, chars[boxV], st)
		}
	}

	// Corners where two selected edges meet
	if b.Edges&EdgeTop != 0 && b.Edges&EdgeLeft != 0 {
		r.SetCell(0, 0, chars[boxTL], st)
	}
	if b.Edges&EdgeTop != 0 && b.Edges&EdgeRight != 0 {
		r.SetCell(r.W-1, 0, chars[boxTR], st)
	}
	if b.Edges&EdgeBottom != 0 && b.Edges&EdgeLeft != 0 {
		r.SetCell(0, r.H-1, chars[boxBL], st)
	}
	if b.Edges&EdgeBottom != 0 && b.Edges&EdgeRight != 0 {
		r.SetCell(r.W-1, r.H-1, chars[boxBR], st)
	}
}

// Box draws a full border around the region edge
func (r Region) Box(line LineType, st Style, tier terminal.Tier) {
	r.Border(Border{Edges: EdgeAll, Line: line, Style: st}, tier)
}
