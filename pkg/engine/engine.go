// Package engine compiles byte-oriented patterns into matchers.
//
// The rest of the system only depends on the Matcher/Session capability:
// any engine that yields leftmost (or leftmost-longest) non-overlapping
// matches over a byte buffer is substitutable. Two backends are always
// built in and one more is available behind a build tag:
//
//   - byte mode (default): dlclark/regexp2 over a latin-1 rune expansion
//     of the buffer, so rune indices are byte offsets and \x00-\xff
//     escapes match raw bytes
//   - unicode mode: coregx/coregex with UTF-8 semantics
//   - hyperscan: flier/gohs, compiled only with CGO and -tags=hyperscan
package engine

import "github.com/bytegrep/bytegrep/pkg/types"

// Flags configure pattern compilation. The core forwards these; character
// folding and unicode handling are entirely the backend's contract.
type Flags struct {
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool

	// Unicode selects UTF-8 rune semantics instead of raw byte
	// semantics. Off by default: bgrep treats input as bytes.
	Unicode bool
}

// Session scans one buffer. Next returns the leftmost match whose start
// is at or after from, or ok=false when the buffer is exhausted.
type Session interface {
	Next(from int) (r types.ByteRange, ok bool)
}

// Matcher is a compiled pattern.
type Matcher interface {
	// Open prepares a scan over buf. The returned session is only
	// valid while buf is unchanged.
	Open(buf []byte) (Session, error)

	// Close releases backend resources.
	Close() error
}

// Compile builds a matcher for pattern under flags, selecting the byte
// backend unless unicode mode is requested.
func Compile(pattern string, flags Flags) (Matcher, error) {
	if flags.Unicode {
		return newUnicodeMatcher(pattern, flags)
	}
	return newByteMatcher(pattern, flags)
}
