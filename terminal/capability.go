package terminal

import (
	"fmt"
	"os"
	"strings"
)

// Tier indicates terminal rendering capability
type Tier uint8

const (
	TierASCII     Tier = iota // ASCII glyphs, 16-color ANSI palette
	Tier256                   // unicode glyphs, xterm-256 palette
	TierTrueColor             // unicode glyphs, 24-bit RGB
)

// String returns the tier name
func (t Tier) String() string {
	switch t {
	case TierASCII:
		return "ascii"
	case Tier256:
		return "256"
	case TierTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// ParseTier parses a tier name as accepted on the command line
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return TierASCII, nil
	case "256":
		return Tier256, nil
	case "truecolor", "24bit":
		return TierTrueColor, nil
	}
	return Tier256, fmt.Errorf("unknown capability tier %q (want ascii, 256, or truecolor)", s)
}

// Unicode reports whether the tier can display box drawing glyphs
func (t Tier) Unicode() bool {
	return t != TierASCII
}

// ColorMode identifies the concrete encoding carried by a Color value
type ColorMode uint8

const (
	ModeTrueColor ColorMode = iota // R, G, B channels
	Mode256                        // Index into xterm-256 palette
	Mode16                         // Index into 16-color ANSI palette
)

// Color is a concrete, tier-appropriate color encoding
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // valid when Mode == ModeTrueColor
	Index   uint8 // valid when Mode == Mode256 or Mode16
}

// ResolveColor maps a logical RGB color to the encoding a tier can display.
// Total: every input has a defined result on every tier.
func ResolveColor(c RGB, tier Tier) Color {
	switch tier {
	case TierTrueColor:
		return Color{Mode: ModeTrueColor, R: c.R, G: c.G, B: c.B}
	case Tier256:
		return Color{Mode: Mode256, Index: RGBTo256(c)}
	default:
		return Color{Mode: Mode16, Index: RGBTo16(c)}
	}
}

// DetectTier determines terminal capability from environment.
// Non-UTF-8 locales force the ASCII tier regardless of color support.
func DetectTier() Tier {
	if !utf8Locale() {
		return TierASCII
	}
	if os.Getenv("TERM") == "dumb" {
		return TierASCII
	}

	// COLORTERM is set by modern terminals and takes priority
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return TierTrueColor
	}

	// Terminal-specific env vars
	for _, v := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return TierTrueColor
		}
	}

	// TERM names advertising direct color
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return TierTrueColor
	}

	return Tier256
}

// utf8Locale checks LC_ALL/LC_CTYPE/LANG for a UTF-8 charmap
func utf8Locale() bool {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if val := os.Getenv(v); val != "" {
			val = strings.ToLower(val)
			return strings.Contains(val, "utf-8") || strings.Contains(val, "utf8")
		}
	}
	// No locale info, assume modern terminal
	return true
}
