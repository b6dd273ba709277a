package lineedit

import (
	"fmt"
	"io"
	"strings"
)

// maxMenuLines limits how many completion candidates are drawn at once.
// The highlighted candidate is kept visible by sliding the window.
const maxMenuLines = 10

// renderer draws Render instructions to a terminal with ANSI escape
// sequences: the prompt line with the cursor at the right column, plus a
// completion menu below it when candidates are active. It tracks how many
// menu lines the previous draw produced so they can be wiped cleanly.
type renderer struct {
	output   io.Writer
	scheme   *ColorScheme
	colors   bool
	lastMenu int
}

func newRenderer(output io.Writer, scheme *ColorScheme, colors bool) *renderer {
	return &renderer{
		output: output,
		scheme: scheme,
		colors: colors,
	}
}

func (r *renderer) paint(c Color) string {
	if !r.colors {
		return ""
	}
	return c.ToANSI()
}

func (r *renderer) reset() string {
	if !r.colors {
		return ""
	}
	return Reset()
}

// draw renders one frame: the prefix, the input text, the candidate menu,
// and the cursor position.
func (r *renderer) draw(prefix string, fr Render) error {
	var b strings.Builder

	// Redraw the prompt line from column zero; wipe everything below it if
	// the previous frame had a menu.
	b.WriteString("\r\x1b[K")
	if r.lastMenu > 0 {
		b.WriteString("\x1b[J")
	}

	b.WriteString(r.paint(r.scheme.Prefix))
	b.WriteString(prefix)
	b.WriteString(r.reset())
	b.WriteString(r.paint(r.scheme.Input))
	b.WriteString(fr.Text)
	b.WriteString(r.reset())

	menu, selected := menuWindow(fr.Candidates, fr.Selected)
	for i, candidate := range menu {
		b.WriteString("\r\n\x1b[K")
		if i == selected {
			b.WriteString(r.paint(r.scheme.Selected))
			b.WriteString("> ")
			b.WriteString(candidate)
			b.WriteString(r.reset())
		} else {
			b.WriteString(r.paint(r.scheme.Candidate))
			b.WriteString("  ")
			b.WriteString(candidate)
			b.WriteString(r.reset())
		}
	}

	// Move back to the prompt line and place the cursor.
	if len(menu) > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", len(menu))
	}
	b.WriteString("\r")
	if col := len([]rune(prefix)) + fr.Cursor; col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}

	r.lastMenu = len(menu)
	_, err := fmt.Fprint(r.output, b.String())
	return err
}

// clearMenu wipes any menu lines left on screen, leaving the cursor on the
// prompt line. Called before handing the terminal back to the host.
func (r *renderer) clearMenu() {
	if r.lastMenu == 0 {
		return
	}
	fmt.Fprint(r.output, "\x1b[s\x1b[J\x1b[u")
	r.lastMenu = 0
}

// menuWindow slides a window of at most maxMenuLines candidates so the
// selected one stays visible, and returns the selected index relative to
// the window.
func menuWindow(candidates []string, selected int) ([]string, int) {
	if len(candidates) <= maxMenuLines {
		return candidates, selected
	}
	offset := 0
	if selected >= maxMenuLines {
		offset = selected - maxMenuLines + 1
	}
	return candidates[offset : offset+maxMenuLines], selected - offset
}
