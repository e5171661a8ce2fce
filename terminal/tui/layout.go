package tui

// CenterStart returns the start offset that centers a span of size dim
// within a parent of size parentDim. Integer division floors; when the
// parent is smaller than or equal to the span, the offset clamps to 0
// and the span is left/top-anchored (clipped by the terminal, not here).
func CenterStart(parentDim, dim int) int {
	if parentDim <= dim {
		return 0
	}
	return (parentDim - dim) / 2
}

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := CenterStart(outer.W, w)
	y := CenterStart(outer.H, h)
	return outer.Sub(x, y, w, h)
}
