package tui

import (
	"testing"

	"github.com/lixenwraith/tuikit/terminal"
)

func TestGlyphsTotality(t *testing.T) {
	tiers := []terminal.Tier{terminal.TierASCII, terminal.Tier256, terminal.TierTrueColor}
	lines := []LineType{LineSingle, LineDouble, LineRounded, LineHeavy, LineASCII, LineType(200)}

	for _, tier := range tiers {
		for _, line := range lines {
			g := Glyphs(line, tier)
			for i, ch := range g {
				if ch == 0 {
					t.Errorf("Glyphs(%d, %v)[%d] is undefined", line, tier, i)
				}
			}
		}
	}
}

func TestGlyphsASCIITierSubstitutes(t *testing.T) {
	for _, line := range []LineType{LineSingle, LineDouble, LineRounded, LineHeavy} {
		g := Glyphs(line, terminal.TierASCII)
		for i, ch := range g {
			if ch > 127 {
				t.Errorf("Glyphs(%d, TierASCII)[%d] = %q, not ASCII", line, i, ch)
			}
		}
	}
	if Glyphs(LineDouble, terminal.TierASCII) != boxChars[LineASCII] {
		t.Error("ASCII tier should substitute the ASCII glyph set")
	}
}

func TestGlyphsUnknownLineFallsBack(t *testing.T) {
	if Glyphs(LineType(200), terminal.TierTrueColor) != boxChars[LineSingle] {
		t.Error("Unknown line type should fall back to LineSingle")
	}
}

func TestBorderAllEdges(t *testing.T) {
	r := newTestRegion(6, 4)
	st := Style{Fg: terminal.Color{Mode: terminal.ModeTrueColor, R: 60}}
	r.Border(Border{Edges: EdgeAll, Line: LineDouble, Style: st}, terminal.TierTrueColor)

	at := func(x, y int) rune { return r.Cells[y*6+x].Rune }

	if at(0, 0) != '╔' || at(5, 0) != '╗' || at(0, 3) != '╚' || at(5, 3) != '╝' {
		t.Errorf("Wrong corners: %q %q %q %q", at(0, 0), at(5, 0), at(0, 3), at(5, 3))
	}
	for x := 1; x < 5; x++ {
		if at(x, 0) != '═' || at(x, 3) != '═' {
			t.Errorf("Wrong horizontal edge at x=%d", x)
		}
	}
	for y := 1; y < 3; y++ {
		if at(0, y) != '║' || at(5, y) != '║' {
			t.Errorf("Wrong vertical edge at y=%d", y)
		}
	}
	// Interior untouched
	if at(2, 1) != 0 {
		t.Error("Border wrote into the interior")
	}
}

func TestBorderEdgeSubset(t *testing.T) {
	r := newTestRegion(5, 3)
	st := Style{Fg: terminal.Color{Mode: terminal.ModeTrueColor, R: 60}}
	r.Border(Border{Edges: EdgeTop | EdgeLeft, Line: LineSingle, Style: st}, terminal.TierTrueColor)

	at := func(x, y int) rune { return r.Cells[y*5+x].Rune }

	if at(0, 0) != '┌' {
		t.Errorf("Expected corner where top and left meet, got %q", at(0, 0))
	}
	// Top-right has no right edge selected, stays a horizontal glyph
	if at(4, 0) != '─' {
		t.Errorf("Expected plain horizontal at unselected corner, got %q", at(4, 0))
	}
	if at(0, 2) != '│' {
		t.Errorf("Expected plain vertical at unselected corner, got %q", at(0, 2))
	}
	if at(4, 2) != 0 {
		t.Error("Unselected edges should not be drawn")
	}
}

func TestBorderASCIITier(t *testing.T) {
	r := newTestRegion(4, 3)
	st := Style{Fg: terminal.Color{Mode: terminal.Mode16, Index: 7}}
	r.Border(Border{Edges: EdgeAll, Line: LineRounded, Style: st}, terminal.TierASCII)

	at := func(x, y int) rune { return r.Cells[y*4+x].Rune }
	if at(0, 0) != '+' || at(3, 0) != '+' || at(1, 0) != '-' || at(0, 1) != '|' {
		t.Errorf("Expected ASCII border glyphs, got %q %q %q %q", at(0, 0), at(3, 0), at(1, 0), at(0, 1))
	}
}

func TestBorderTooSmall(t *testing.T) {
	r := newTestRegion(1, 1)
	st := Style{Fg: terminal.Color{Mode: terminal.ModeTrueColor, R: 60}}
	r.Border(Border{Edges: EdgeAll, Line: LineSingle, Style: st}, terminal.TierTrueColor)
	if r.Cells[0].Rune != 0 {
		t.Error("Border should not draw on a region smaller than 2x2")
	}
}
