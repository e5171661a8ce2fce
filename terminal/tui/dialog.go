package tui

import "github.com/lixenwraith/tuikit/terminal"

// Default dialog geometry
const (
	DefaultDialogWidth  = 54
	DefaultDialogHeight = 8
)

// Dialog margins between border and text region
const (
	dialogMarginX = 2
	dialogMarginY = 1
)

// DialogOpts configures a fixed-size message dialog
type DialogOpts struct {
	Title  string   // bold, centered at inner row 0
	Lines  []string // centered body lines starting at inner row 2
	Width  int      // 0 = DefaultDialogWidth
	Height int      // 0 = DefaultDialogHeight
	Line   LineType
}

// Dialog renders a bordered dialog centered in root. Stateless and
// single-shot: every call recomputes geometry from the current root
// size, so the dialog re-centers after a terminal resize. Viewports
// smaller than the dialog anchor it at the top-left and clip; no error
// is ever surfaced.
func Dialog(root Region, theme Theme, tier terminal.Tier, opts DialogOpts) {
	w := opts.Width
	if w <= 0 {
		w = DefaultDialogWidth
	}
	h := opts.Height
	if h <= 0 {
		h = DefaultDialogHeight
	}

	dialog := Center(root, w, h)

	textStyle := ResolveStyle(theme, RoleText, tier)
	dialog.Fill(textStyle)
	dialog.Border(Border{
		Edges: EdgeAll,
		Line:  opts.Line,
		Style: ResolveStyle(theme, RoleBorder, tier),
	}, tier)

	inner := dialog.InsetXY(dialogMarginX, dialogMarginY)
	inner.TextCenter(0, opts.Title, ResolveStyle(theme, RoleTitle, tier))
	for i, line := range opts.Lines {
		inner.TextCenter(2+i, line, textStyle)
	}
}

// ModalOpts configures modal overlay rendering
type ModalOpts struct {
	Title string
	Hint  string // Right-aligned hint text on the top edge
	Line  LineType
}

// Modal fills the region, draws a border with the title embedded in the
// top edge, and returns the content region inside the border
func (r Region) Modal(theme Theme, tier terminal.Tier, opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	textStyle := ResolveStyle(theme, RoleText, tier)
	r.Fill(textStyle)
	r.Box(opts.Line, ResolveStyle(theme, RoleBorder, tier), tier)

	if opts.Title != "" {
		title := " " + opts.Title + " "
		if StringWidth(title) > r.W-4 {
			title = Truncate(title, r.W-4)
		}
		x := CenterOffset(r.W, StringWidth(title))
		r.Text(x, 0, title, ResolveStyle(theme, RoleTitle, tier))
	}

	if opts.Hint != "" {
		hint := opts.Hint
		if StringWidth(hint) > r.W/3 {
			hint = Truncate(hint, r.W/3)
		}
		x := r.W - StringWidth(hint) - 2
		if x < r.W/2 {
			x = r.W / 2
		}
		r.Text(x, 0, hint, ResolveStyle(theme, RoleHint, tier))
	}

	return r.Sub(1, 1, r.W-2, r.H-2)
}

// AlertOpts configures a single-button message box
type AlertOpts struct {
	Title   string
	Message string
	Button  string // Default "OK"
	Line    LineType
}

// Alert renders a message box sized to its wrapped message, centered in
// the region. Rendering only; key handling belongs to the caller.
// Returns the content region above the button row.
func (r Region) Alert(theme Theme, tier terminal.Tier, opts AlertOpts) Region {
	if opts.Button == "" {
		opts.Button = "OK"
	}

	msgLines := WrapText(opts.Message, r.W-8)
	if len(msgLines) == 0 {
		msgLines = []string{""}
	}

	boxW := 36
	msgMaxW := 0
	for _, line := range msgLines {
		if w := StringWidth(line); w > msgMaxW {
			msgMaxW = w
		}
	}
	if msgMaxW+6 > boxW {
		boxW = msgMaxW + 6
	}
	if boxW > r.W-4 {
		boxW = r.W - 4
	}

	boxH := 3 + len(msgLines) + 3
	if boxH > r.H-2 {
		boxH = r.H - 2
	}

	box := Center(r, boxW, boxH)
	content := box.Modal(theme, tier, ModalOpts{Title: opts.Title, Line: opts.Line})

	textStyle := ResolveStyle(theme, RoleText, tier)
	y := 0
	for _, line := range msgLines {
		if y >= content.H-2 {
			break
		}
		content.TextCenter(y, line, textStyle)
		y++
	}

	buttonY := content.H - 1
	label := " " + opts.Button + " "
	content.TextCenter(buttonY, label, textStyle.WithAttr(terminal.AttrReverse))

	return content.Sub(0, 0, content.W, buttonY-1)
}
