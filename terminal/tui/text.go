package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CenterOffset returns the column that horizontally centers text of the
// given display width inside a region of the given width. Integer division
// floors (odd leftover space leaves the text one column left of perfect
// center). Returns 0 when the text is as wide or wider than the region;
// the caller renders at column 0 and the edge clips.
func CenterOffset(regionWidth, textWidth int) int {
	if textWidth >= regionWidth {
		return 0
	}
	return (regionWidth - textWidth) / 2
}

// StringWidth returns the display width of s in terminal cells,
// segmenting by grapheme cluster so East Asian characters and emoji
// count as their rendered width
func StringWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// Emoji presentation selector: forces the preceding character to render
// as a double-width emoji (Unicode TR #51)
const vs16 = '\uFE0F'

// clusterWidth returns the display width of a single grapheme cluster
func clusterWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	if strings.ContainsRune(cluster, vs16) {
		return 2
	}
	return runewidth.StringWidth(cluster)
}

// Truncate truncates s to maxWidth cells with … suffix if it exceeds it
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	out := make([]byte, 0, len(s))
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)
		if w+cw > maxWidth-1 {
			break
		}
		out = append(out, cluster...)
		w += cw
		s = rest
		state = newState
	}
	return string(out) + "…"
}

// WrapText wraps text at word boundaries to fit width, measuring in
// display cells rather than runes so wide characters count fully.
// Returns at least one line; each line is no wider than width except
// for a single cluster that alone exceeds it (clusters never split).
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var line []byte
	lineW := 0
	lastSpace := -1 // byte offset of the last space in line
	lastSpaceW := 0 // line width up to that space

	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)

		if lineW+cw > width && lineW > 0 {
			if lastSpace >= 0 {
				// Wrap at the last space; the tail starts the next line
				tail := line[lastSpace+1:]
				lines = append(lines, string(line[:lastSpace]))
				line = append(line[:0:0], tail...)
				lineW = lineW - lastSpaceW - 1
			} else {
				lines = append(lines, string(line))
				line = line[:0]
				lineW = 0
			}
			lastSpace = -1
			lastSpaceW = 0

			// Skip a space that lands at the wrap point
			if cluster == " " && lineW == 0 {
				s = rest
				state = newState
				continue
			}
		}

		if cluster == " " {
			lastSpace = len(line)
			lastSpaceW = lineW
		}
		line = append(line, cluster...)
		lineW += cw
		s = rest
		state = newState
	}
	lines = append(lines, string(line))

	return lines
}

// Text renders a styled run at position, clipping at the region edge.
// Wide characters advance the column by their display width.
func (r Region) Text(x, y int, s string, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)
		if col >= r.W {
			break
		}
		if col >= 0 && cw > 0 {
			ch, _ := utf8.DecodeRuneInString(cluster)
			r.SetCell(col, y, ch, st)
		}
		col += cw
		s = rest
		state = newState
	}
}

// TextCenter renders a styled run centered on a row, clamped to column 0
// when the text is wider than the region
func (r Region) TextCenter(y int, s string, st Style) {
	r.Text(CenterOffset(r.W, StringWidth(s)), y, s, st)
}

// TextRight renders a styled run right-aligned on a row
func (r Region) TextRight(y int, s string, st Style) {
	r.Text(r.W-StringWidth(s), y, s, st)
}
