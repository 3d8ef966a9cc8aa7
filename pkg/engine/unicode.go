package engine

import (
	"github.com/coregx/coregex"

	"github.com/bytegrep/bytegrep/pkg/types"
)

// unicodeMatcher matches with UTF-8 rune semantics via coregex.
type unicodeMatcher struct {
	re *coregex.Regex
}

func newUnicodeMatcher(pattern string, flags Flags) (*unicodeMatcher, error) {
	p := pattern
	if flags.CaseInsensitive {
		p = "(?i)" + p
	}

	re, err := coregex.Compile(p)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return &unicodeMatcher{re: re}, nil
}

func (m *unicodeMatcher) Open(buf []byte) (Session, error) {
	return &unicodeSession{re: m.re, buf: buf}, nil
}

func (m *unicodeMatcher) Close() error {
	return nil
}

type unicodeSession struct {
	re  *coregex.Regex
	buf []byte
}

func (s *unicodeSession) Next(from int) (types.ByteRange, bool) {
	if from < 0 || from > len(s.buf) {
		return types.ByteRange{}, false
	}
	loc := s.re.FindIndex(s.buf[from:])
	if loc == nil {
		return types.ByteRange{}, false
	}
	return types.ByteRange{Start: from + loc[0], End: from + loc[1]}, true
}
