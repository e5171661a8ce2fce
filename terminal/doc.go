// Package terminal models terminal output capability for cell-based rendering.
//
// Features:
//   - Capability tiers: true color + unicode, 256-color palette, ASCII-safe 16-color
//   - Total color resolution: every RGB value maps to a concrete encoding on every tier
//   - Environment-based tier detection (COLORTERM, TERM, locale)
//
// The package owns no terminal; it only describes what the connected one
// can display. Actual I/O belongs to a screen driver such as tcell.
package terminal
