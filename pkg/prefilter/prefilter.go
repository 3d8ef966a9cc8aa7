// Package prefilter gates the regex engine with an Aho-Corasick scan for
// literals the pattern cannot match without. When none of the literals
// appear in a buffer, the whole engine scan can be skipped.
package prefilter

import (
	"regexp/syntax"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter holds the required-literal matcher for one pattern.
// A nil *Prefilter is valid and never skips anything.
type Prefilter struct {
	matcher *ahocorasick.Matcher
}

// FromPattern builds a prefilter for pattern, or nil when no sound set of
// required literals exists (including under case-insensitive matching,
// where literal bytes are not reliable).
func FromPattern(pattern string, caseInsensitive, unicodeMode bool) *Prefilter {
	if caseInsensitive {
		return nil
	}

	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		// Engine compilation reports pattern errors; just don't filter.
		return nil
	}

	lits := requiredLiterals(re, unicodeMode)
	if len(lits) == 0 {
		return nil
	}

	return &Prefilter{matcher: ahocorasick.NewMatcher(lits)}
}

// Possible reports whether content may contain a match. False means the
// engine scan is guaranteed to find nothing.
func (pf *Prefilter) Possible(content []byte) bool {
	if pf == nil || pf.matcher == nil {
		return true
	}
	return len(pf.matcher.Match(content)) > 0
}

const (
	maxLiterals   = 64
	maxClassSize  = 8
	maxLiteralLen = 64
)

// requiredLiterals returns a set of literals such that every match of re
// contains at least one of them, or nil when no such set can be derived.
// Soundness rules:
//   - a literal node contributes itself
//   - a concat may use any single child's set (every child matches within
//     the span, so its required literal must appear)
//   - an alternation needs a non-empty set from every branch
//   - x+ and x{n,} with n >= 1 may use the sub-expression's set
func requiredLiterals(re *syntax.Regexp, unicodeMode bool) [][]byte {
	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 || len(re.Rune) == 0 {
			return nil
		}
		b, ok := literalBytes(re.Rune, unicodeMode)
		if !ok || len(b) > maxLiteralLen {
			return nil
		}
		return [][]byte{b}

	case syntax.OpConcat:
		// Prefer the child with the longest shortest-literal.
		var best [][]byte
		bestLen := 0
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub, unicodeMode)
			if len(lits) == 0 {
				continue
			}
			if n := minLen(lits); n > bestLen {
				best, bestLen = lits, n
			}
		}
		return best

	case syntax.OpAlternate:
		var all [][]byte
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub, unicodeMode)
			if len(lits) == 0 {
				return nil
			}
			all = append(all, lits...)
			if len(all) > maxLiterals {
				return nil
			}
		}
		return all

	case syntax.OpCapture:
		if len(re.Sub) == 0 {
			return nil
		}
		return requiredLiterals(re.Sub[0], unicodeMode)

	case syntax.OpPlus:
		return requiredLiterals(re.Sub[0], unicodeMode)

	case syntax.OpRepeat:
		if re.Min < 1 {
			return nil
		}
		return requiredLiterals(re.Sub[0], unicodeMode)

	case syntax.OpCharClass:
		if re.Flags&syntax.FoldCase != 0 {
			return nil
		}
		var lits [][]byte
		count := 0
		for i := 0; i < len(re.Rune); i += 2 {
			for r := re.Rune[i]; r <= re.Rune[i+1]; r++ {
				count++
				if count > maxClassSize {
					return nil
				}
				b, ok := literalBytes([]rune{r}, unicodeMode)
				if !ok {
					return nil
				}
				lits = append(lits, b)
			}
		}
		return lits

	default:
		return nil
	}
}

// literalBytes encodes runes the way the active engine sees the buffer:
// one byte per rune in byte mode, UTF-8 in unicode mode.
func literalBytes(runes []rune, unicodeMode bool) ([]byte, bool) {
	if unicodeMode {
		return []byte(string(runes)), true
	}
	b := make([]byte, len(runes))
	for i, r := range runes {
		if r > 0xff {
			return nil, false
		}
		b[i] = byte(r)
	}
	return b, true
}

func minLen(lits [][]byte) int {
	n := len(lits[0])
	for _, l := range lits[1:] {
		if len(l) < n {
			n = len(l)
		}
	}
	return n
}
