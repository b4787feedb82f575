// Package termstyle binds a color policy to a lipgloss renderer so the tree
// printer can style output without re-checking the policy.
package termstyle

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/chojs23/as-tree/internal/cli"
)

// NewRenderer returns a renderer for w that honors policy.
//
// ColorAuto keeps lipgloss's own detection, which looks at whether w is a
// terminal as well as NO_COLOR and CLICOLOR_FORCE.
func NewRenderer(w io.Writer, policy cli.ColorPolicy) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch policy {
	case cli.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case cli.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	}
	return r
}

// Colorized reports whether r will emit color escapes.
func Colorized(r *lipgloss.Renderer) bool {
	return r.ColorProfile() != termenv.Ascii
}
