package engine

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/bytegrep/bytegrep/pkg/types"
)

// matchTimeout bounds a single match attempt so a pathological pattern
// cannot hang the scan through catastrophic backtracking.
const matchTimeout = 5 * time.Second

// byteMatcher matches with raw byte semantics. The buffer is expanded to
// one rune per byte (latin-1), so regexp2's rune indices are exact byte
// offsets and escapes in the \x00-\xff range match single bytes, the way
// a byte-oriented engine with unicode disabled would.
type byteMatcher struct {
	re *regexp2.Regexp
}

func newByteMatcher(pattern string, flags Flags) (*byteMatcher, error) {
	var opts regexp2.RegexOptions
	if flags.CaseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	// Try RE2 mode first (no backtracking blowups), then fall back to
	// the default Perl-compatible mode for constructs RE2 rejects.
	re, err := regexp2.Compile(pattern, opts|regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(pattern, opts)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}
	re.MatchTimeout = matchTimeout

	return &byteMatcher{re: re}, nil
}

func (m *byteMatcher) Open(buf []byte) (Session, error) {
	runes := make([]rune, len(buf))
	for i, b := range buf {
		runes[i] = rune(b)
	}
	return &byteSession{re: m.re, runes: runes}, nil
}

func (m *byteMatcher) Close() error {
	return nil
}

type byteSession struct {
	re    *regexp2.Regexp
	runes []rune
}

func (s *byteSession) Next(from int) (types.ByteRange, bool) {
	if from < 0 || from > len(s.runes) {
		return types.ByteRange{}, false
	}
	m, err := s.re.FindRunesMatchStartingAt(s.runes, from)
	if err != nil || m == nil {
		return types.ByteRange{}, false
	}
	return types.ByteRange{Start: m.Index, End: m.Index + m.Length}, true
}
