// Package ranges builds the final sequence of reportable byte ranges
// for one buffer: raw left-to-right collection from a pattern matcher,
// and inversion into the complementary gaps.
package ranges

import "github.com/bytegrep/bytegrep/pkg/types"

// Session yields successive non-overlapping matches over one buffer.
// Next returns the leftmost match starting at or after from.
type Session interface {
	Next(from int) (types.ByteRange, bool)
}

// Collect scans the whole buffer of length n and returns the raw match
// sequence. The cursor always advances to max(end, start+1) so that a
// zero-length match cannot stall the scan.
func Collect(s Session, n int) types.Sequence {
	var seq types.Sequence

	cursor := 0
	for cursor <= n {
		r, ok := s.Next(cursor)
		if !ok {
			break
		}
		seq = append(seq, r)

		next := r.End
		if next <= r.Start {
			next = r.Start + 1
		}
		cursor = next
	}

	return seq
}

// Invert returns the complement of seq over [0, n): the gap before the
// first range, the non-empty gaps between consecutive ranges, and the gap
// after the last range. Zero-width gaps between adjacent ranges are not
// emitted. An empty input inverts to the single range [0, n), or to an
// empty sequence when n == 0.
func Invert(seq types.Sequence, n int) types.Sequence {
	var out types.Sequence

	pos := 0
	for _, r := range seq {
		if r.Start > pos {
			out = append(out, types.ByteRange{Start: pos, End: r.Start})
		}
		if r.End > pos {
			pos = r.End
		}
	}
	if pos < n {
		out = append(out, types.ByteRange{Start: pos, End: n})
	}

	return out
}
