package view

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/coral-mesh/bix/internal/hexview"
)

// palette colors the columns of a rendered row.
type palette struct {
	address lipgloss.Style
	hex     lipgloss.Style
	ascii   lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		address: r.NewStyle().Foreground(lipgloss.Color("241")),
		hex:     r.NewStyle().Foreground(lipgloss.Color("39")),
		ascii:   r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// useColor resolves the --color mode for out.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderStyled writes the window like Renderer.Render with each column
// colored. Padding is left unstyled so the ASCII column stays aligned.
func renderStyled(out io.Writer, r *hexview.Renderer, win hexview.Window, force bool) error {
	lr := lipgloss.NewRenderer(out)
	if force {
		lr.SetColorProfile(termenv.ANSI256)
	}
	p := newPalette(lr)

	if r.Layout().IsRaw() {
		for line := range r.Lines(win) {
			if _, err := fmt.Fprintln(out, styled(p.hex, line[:len(line)-1])); err != nil {
				return err
			}
		}
		return nil
	}

	for row := range hexview.Rows(win, r.Layout().Width) {
		line := r.Format(row)
		text := styled(p.address, line.Address) + styled(p.hex, line.Hex) + line.Pad + styled(p.ascii, line.ASCII)
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("failed to write rendered line: %w", err)
		}
	}
	return nil
}

func styled(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}
