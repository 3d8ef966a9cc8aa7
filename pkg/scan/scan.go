// Package scan turns input sources into per-source match results: it
// reads each source fully into memory, runs the pattern engine through
// the range collector, and applies inversion when requested.
package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/bytegrep/bytegrep/pkg/engine"
	"github.com/bytegrep/bytegrep/pkg/prefilter"
	"github.com/bytegrep/bytegrep/pkg/ranges"
	"github.com/bytegrep/bytegrep/pkg/types"
)

// StdinName is the display name used for standard input.
const StdinName = "-"

// Options configure scanning. They are resolved once per invocation,
// before any source is read.
type Options struct {
	// Invert replaces the match sequence with its complement.
	Invert bool

	// TrimEndingNewline drops a single trailing 0x0A from the buffer
	// before matching.
	TrimEndingNewline bool

	// Jobs bounds concurrent source scans. Zero means one per CPU.
	Jobs int
}

// Source identifies one input to scan.
type Source struct {
	// Name is the display name.
	Name string

	// Stdin selects standard input instead of opening Name as a path.
	Stdin bool
}

// Resolve maps positional file arguments to sources. No arguments, or a
// literal "-", means standard input.
func Resolve(paths []string) []Source {
	if len(paths) == 0 {
		return []Source{{Name: StdinName, Stdin: true}}
	}
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Name: p, Stdin: p == StdinName}
	}
	return sources
}

// ReadError reports a source that could not be read. It is isolated to
// that source; the run continues with the remaining sources.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Scanner scans sources with a compiled matcher.
type Scanner struct {
	matcher engine.Matcher
	filter  *prefilter.Prefilter
	opts    Options
	stdin   io.Reader
}

// New creates a Scanner. filter may be nil.
func New(m engine.Matcher, filter *prefilter.Prefilter, opts Options) *Scanner {
	return &Scanner{
		matcher: m,
		filter:  filter,
		opts:    opts,
		stdin:   os.Stdin,
	}
}

// ScanBytes scans an in-memory buffer and returns its result.
func (s *Scanner) ScanBytes(name string, buf []byte) (*types.SourceResult, error) {
	if s.opts.TrimEndingNewline && len(buf) > 0 && buf[len(buf)-1] == '\n' {
		buf = buf[:len(buf)-1]
	}
	n := len(buf)

	var raw types.Sequence
	if s.filter.Possible(buf) {
		session, err := s.matcher.Open(buf)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}
		raw = ranges.Collect(session, n)
	}

	final := raw
	if s.opts.Invert {
		final = ranges.Invert(raw, n)
	}

	return &types.SourceResult{Name: name, Data: buf, Ranges: final}, nil
}

// ScanSource reads one source and scans it. Read failures come back as
// *ReadError.
func (s *Scanner) ScanSource(src Source) (*types.SourceResult, error) {
	buf, err := s.read(src)
	if err != nil {
		return nil, &ReadError{Name: src.Name, Err: err}
	}
	return s.ScanBytes(src.Name, buf)
}

func (s *Scanner) read(src Source) ([]byte, error) {
	if src.Stdin {
		return io.ReadAll(s.stdin)
	}
	return os.ReadFile(src.Name)
}
