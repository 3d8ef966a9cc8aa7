// Package render writes scan results to an output stream in one of the
// four output modes: matched filenames, unmatched filenames, byte
// offsets, and matched byte spans (offsets and spans combinable).
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bytegrep/bytegrep/pkg/types"
)

// Renderer emits records for a full, input-ordered list of results.
type Renderer struct {
	w         *bufio.Writer
	mode      types.Mode
	showNames bool
	styles    *Styles
}

// New creates a Renderer writing to w. styles may be nil for plain
// output.
func New(w io.Writer, mode types.Mode, showNames bool, styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Renderer{
		w:         bufio.NewWriter(w),
		mode:      mode,
		showNames: showNames,
		styles:    styles,
	}
}

// Render emits all records in source order and flushes. The returned
// matched flag reports whether the active mode's match condition was
// satisfied by at least one source, which is exactly "at least one
// record was emitted".
func (r *Renderer) Render(results []*types.SourceResult) (matched bool, err error) {
	for _, res := range results {
		emitted, err := r.renderSource(res)
		if err != nil {
			return matched, err
		}
		matched = matched || emitted
	}
	return matched, r.w.Flush()
}

func (r *Renderer) renderSource(res *types.SourceResult) (bool, error) {
	if r.mode.FileListing() {
		want := !r.mode.ListUnmatched
		if res.Matched() != want {
			return false, nil
		}
		if _, err := r.styles.name.Fprintln(r.w, res.Name); err != nil {
			return false, err
		}
		return true, nil
	}

	for _, rng := range res.Ranges {
		if err := r.renderRange(res, rng); err != nil {
			return false, err
		}
	}
	return len(res.Ranges) > 0, nil
}

// renderRange writes one record: [name:][0xoffset:]bytes\n with the
// offset and bytes parts controlled by the mode's sub-flags.
func (r *Renderer) renderRange(res *types.SourceResult, rng types.ByteRange) error {
	if r.showNames {
		if _, err := r.styles.name.Fprint(r.w, res.Name); err != nil {
			return err
		}
		if _, err := r.styles.separator.Fprint(r.w, ":"); err != nil {
			return err
		}
	}

	if r.mode.ShowOffset {
		if _, err := r.styles.offset.Fprint(r.w, fmt.Sprintf("0x%x", rng.Start)); err != nil {
			return err
		}
		if r.mode.ShowBytes {
			if _, err := r.styles.separator.Fprint(r.w, ":"); err != nil {
				return err
			}
		}
	}

	if r.mode.ShowBytes {
		// Binary-safe passthrough: the span bytes go out verbatim.
		if _, err := r.w.Write(res.Data[rng.Start:rng.End]); err != nil {
			return err
		}
	}

	return r.w.WriteByte('\n')
}
