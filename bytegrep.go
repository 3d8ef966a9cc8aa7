// Package bytegrep provides byte-oriented pattern scanning over binary
// buffers, with no line semantics.
//
// # Basic Usage
//
// Create a scanner for a pattern and scan content:
//
//	scanner, err := bytegrep.NewScanner(`\x7fELF`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer scanner.Close()
//
//	result, err := scanner.ScanFile("/bin/true")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range result.Ranges {
//	    fmt.Printf("match at 0x%x\n", r.Start)
//	}
//
// # Inverted matching
//
// With inversion the result holds the complementary gaps instead, and
// Matched() reports whether at least one gap exists:
//
//	scanner, err := bytegrep.NewScanner(`\x00+`, bytegrep.WithInvertMatch())
package bytegrep

import (
	"fmt"
	"os"

	"github.com/bytegrep/bytegrep/pkg/engine"
	"github.com/bytegrep/bytegrep/pkg/prefilter"
	"github.com/bytegrep/bytegrep/pkg/scan"
	"github.com/bytegrep/bytegrep/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/bytegrep/bytegrep" without subpackages.
type (
	// ByteRange is a half-open [Start, End) interval over a buffer.
	ByteRange = types.ByteRange

	// Sequence is an ordered, non-overlapping list of ranges.
	Sequence = types.Sequence

	// SourceResult holds one source's final ranges and verdict.
	SourceResult = types.SourceResult
)

// Scanner scans buffers and files for one compiled pattern.
type Scanner struct {
	matcher engine.Matcher
	scanner *scan.Scanner
	config  *scannerConfig
}

// scannerConfig holds scanner configuration.
type scannerConfig struct {
	ignoreCase  bool
	unicode     bool
	invert      bool
	trimEOL     bool
	noPrefilter bool
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithIgnoreCase enables case-insensitive matching.
func WithIgnoreCase() Option {
	return func(c *scannerConfig) { c.ignoreCase = true }
}

// WithUnicode switches from raw byte semantics to UTF-8 rune semantics.
func WithUnicode() Option {
	return func(c *scannerConfig) { c.unicode = true }
}

// WithInvertMatch reports the complement of the match ranges instead of
// the ranges themselves. This also changes the verdict: a source counts
// as matched when at least one gap exists.
func WithInvertMatch() Option {
	return func(c *scannerConfig) { c.invert = true }
}

// WithTrimEndingNewline drops a single trailing newline byte from each
// buffer before matching.
func WithTrimEndingNewline() Option {
	return func(c *scannerConfig) { c.trimEOL = true }
}

// WithoutPrefilter disables the literal prefilter optimization.
func WithoutPrefilter() Option {
	return func(c *scannerConfig) { c.noPrefilter = true }
}

// NewScanner compiles pattern and creates a Scanner.
func NewScanner(pattern string, opts ...Option) (*Scanner, error) {
	config := &scannerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	flags := engine.Flags{
		CaseInsensitive: config.ignoreCase,
		Unicode:         config.unicode,
	}

	m, err := engine.Compile(pattern, flags)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}

	var pf *prefilter.Prefilter
	if !config.noPrefilter {
		pf = prefilter.FromPattern(pattern, config.ignoreCase, config.unicode)
	}

	s := scan.New(m, pf, scan.Options{
		Invert:            config.invert,
		TrimEndingNewline: config.trimEOL,
	})

	return &Scanner{matcher: m, scanner: s, config: config}, nil
}

// ScanBytes scans an in-memory buffer.
func (s *Scanner) ScanBytes(name string, buf []byte) (*SourceResult, error) {
	return s.scanner.ScanBytes(name, buf)
}

// ScanString scans a string.
func (s *Scanner) ScanString(name, content string) (*SourceResult, error) {
	return s.scanner.ScanBytes(name, []byte(content))
}

// ScanFile reads and scans a file.
func (s *Scanner) ScanFile(path string) (*SourceResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return s.scanner.ScanBytes(path, content)
}

// Close releases scanner resources.
func (s *Scanner) Close() error {
	if s.matcher != nil {
		return s.matcher.Close()
	}
	return nil
}
