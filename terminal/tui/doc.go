// Package tui provides immediate-mode windowing and style resolution for
// modal dialog rendering over a terminal cell buffer.
//
// Core abstraction is Region, a rectangular view into a row-major cell
// slice. All drawing is relative to region bounds with automatic clipping;
// child regions derived with Sub can never exceed their parent and never
// report negative dimensions, so degenerate viewports degrade visually
// instead of failing.
//
// Visual intent is expressed as theme roles (border, title, text) and
// resolved per terminal capability tier: reduced tiers substitute ASCII
// box glyphs and smaller palettes. Resolution is total; there is no
// unsupported-terminal error path.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	tui.Dialog(root, tui.DefaultTheme, tier, tui.DialogOpts{
//	    Title: "A command is still running.",
//	    Lines: []string{"Press [ESC] to cancel", "Press any other key to wait"},
//	})
//	// hand cells to the screen driver
package tui
