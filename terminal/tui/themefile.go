package tui

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/tuikit/terminal"
)

//go:embed themes/*.toml
var embeddedThemes embed.FS

// themeFile is the on-disk theme shape: hex color strings per role.
// Omitted roles fall back to DefaultTheme so loaded themes always
// satisfy the completeness contract of Theme.Color.
type themeFile struct {
	Name       string `toml:"name"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
	Title      string `toml:"title"`
	Text       string `toml:"text"`
	Hint       string `toml:"hint"`
}

// LoadTheme loads a named theme from the embedded set.
// Falls back to "default" when name is empty.
func LoadTheme(name string) (Theme, error) {
	if name == "" {
		name = "default"
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	return parseTheme(data, name)
}

// LoadThemeFile loads a theme from a TOML file on disk
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading theme file: %w", err)
	}
	return parseTheme(data, path)
}

// AvailableThemes returns the embedded theme names
func AvailableThemes() []string {
	return []string{"default", "light"}
}

func parseTheme(data []byte, src string) (Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", src, err)
	}

	t := Theme{}
	fields := []struct {
		role Role
		hex  string
	}{
		{RoleBackground, tf.Background},
		{RoleBorder, tf.Border},
		{RoleTitle, tf.Title},
		{RoleText, tf.Text},
		{RoleHint, tf.Hint},
	}
	for _, f := range fields {
		if f.hex == "" {
			t[f.role] = DefaultTheme[f.role]
			continue
		}
		c, err := parseHexColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("theme %q role %q: %w", src, f.role, err)
		}
		t[f.role] = c
	}
	return t, nil
}

// parseHexColor parses "#rrggbb" or "rrggbb" into an RGB value
func parseHexColor(s string) (terminal.RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return terminal.RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(h[i*2])
		lo, ok2 := hexNibble(h[i*2+1])
		if !ok1 || !ok2 {
			return terminal.RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
		v[i] = hi<<4 | lo
	}
	return terminal.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
