// Command dialog-demo renders a capability-aware modal dialog in the
// current terminal. The dialog re-centers on resize; ESC or q exits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

func main() {
	var themeName string
	var themePath string
	var tierName string

	cmd := &cobra.Command{
		Use:          "dialog-demo",
		Short:        "Render a modal dialog with capability-aware glyphs and colors",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(themeName, themePath)
			if err != nil {
				return err
			}

			tier := terminal.DetectTier()
			if tierName != "auto" {
				tier, err = terminal.ParseTier(tierName)
				if err != nil {
					return err
				}
			}

			return run(theme, tier)
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "default", "embedded theme name (default, light)")
	cmd.Flags().StringVar(&themePath, "theme-file", "", "TOML theme file, overrides --theme")
	cmd.Flags().StringVar(&tierName, "tier", "auto", "capability tier: auto, truecolor, 256, ascii")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadTheme(name, path string) (tui.Theme, error) {
	if path != "" {
		return tui.LoadThemeFile(path)
	}
	return tui.LoadTheme(name)
}

func run(theme tui.Theme, tier terminal.Tier) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	for {
		draw(screen, theme, tier)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

func draw(screen tcell.Screen, theme tui.Theme, tier terminal.Tier) {
	w, h := screen.Size()
	cells := make([]terminal.Cell, w*h)
	root := tui.NewRegion(cells, w, 0, 0, w, h)

	root.Fill(tui.ResolveStyle(theme, tui.RoleText, tier))
	tui.Dialog(root, theme, tier, tui.DialogOpts{
		Title: "A command is still running.",
		Lines: []string{
			"Press [ESC] to cancel",
			"Press any other key to keep waiting",
		},
		Line: tui.LineDouble,
	})

	flush(screen, cells, w, h)
	screen.Show()
}

// flush copies the cell buffer to the tcell screen
func flush(screen tcell.Screen, cells []terminal.Cell, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			st := tcell.StyleDefault.
				Foreground(tcellColor(c.Fg)).
				Background(tcellColor(c.Bg)).
				Attributes(tcellAttrs(c.Attrs))
			screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func tcellColor(c terminal.Color) tcell.Color {
	if c.Mode == terminal.ModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(c.Index))
}

func tcellAttrs(a terminal.Attr) tcell.AttrMask {
	var mask tcell.AttrMask
	if a&terminal.AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&terminal.AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&terminal.AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&terminal.AttrUnderline != 0 {
		mask |= tcell.AttrUnderline
	}
	if a&terminal.AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&terminal.AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	return mask
}
