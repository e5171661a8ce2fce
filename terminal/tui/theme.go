package tui

import (
	"fmt"

	"github.com/lixenwraith/tuikit/terminal"
)

// Role names a semantic color slot in a theme
type Role uint8

const (
	RoleBackground Role = iota
	RoleBorder
	RoleTitle
	RoleText
	RoleHint
)

// roleNames maps roles to their theme file keys
var roleNames = [...]string{
	RoleBackground: "background",
	RoleBorder:     "border",
	RoleTitle:      "title",
	RoleText:       "text",
	RoleHint:       "hint",
}

// String returns the role's theme file key
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", r)
}

// Theme maps semantic roles to logical colors. Lookups never mutate it;
// a theme is shared read-only across render calls.
type Theme map[Role]terminal.RGB

// Color returns the logical color for a role. A missing role is a
// programmer error, not a runtime condition: the role set used by the
// renderer is fixed and every theme must cover it.
func (t Theme) Color(role Role) terminal.RGB {
	c, ok := t[role]
	if !ok {
		panic(fmt.Sprintf("tui: theme missing role %q", role))
	}
	return c
}

// DefaultTheme provides reasonable defaults covering every role
var DefaultTheme = Theme{
	RoleBackground: {R: 20, G: 20, B: 30},
	RoleBorder:     {R: 60, G: 80, B: 100},
	RoleTitle:      {R: 255, G: 255, B: 255},
	RoleText:       {R: 200, G: 200, B: 200},
	RoleHint:       {R: 100, G: 180, B: 200},
}

// ResolveStyle resolves a theme role into a renderable style on the
// given capability tier. The title role always carries bold.
func ResolveStyle(t Theme, role Role, tier terminal.Tier) Style {
	st := Style{
		Fg: terminal.ResolveColor(t.Color(role), tier),
		Bg: terminal.ResolveColor(t.Color(RoleBackground), tier),
	}
	if role == RoleTitle {
		st.Attr |= terminal.AttrBold
	}
	return st
}
