package render

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styles holds the color formatters for rendered records. Raw matched
// bytes are never styled so the byte-passthrough stays verbatim.
type Styles struct {
	name      *color.Color
	separator *color.Color
	offset    *color.Color
}

// NewStyles creates the formatters. enabled=false disables all colors.
func NewStyles(enabled bool) *Styles {
	s := &Styles{
		name:      color.New(color.FgMagenta),
		separator: color.New(color.FgCyan),
		offset:    color.New(color.FgGreen),
	}

	// Set explicitly so the package-global color detection cannot
	// override the resolved --color mode.
	if enabled {
		s.name.EnableColor()
		s.separator.EnableColor()
		s.offset.EnableColor()
	} else {
		s.name.DisableColor()
		s.separator.DisableColor()
		s.offset.DisableColor()
	}

	return s
}

// ColorEnabled resolves a --color mode (auto, always, never) against the
// output, honoring NO_COLOR for the auto mode.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
