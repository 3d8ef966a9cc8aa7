package types

// ByteRange is byte range [Start, End) - half-open interval.
// Zero-length ranges (Start == End) are valid and represent empty matches.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r ByteRange) IsEmpty() bool {
	return r.Start == r.End
}

// Sequence is an ordered, non-overlapping list of ranges over one buffer.
// Invariant: for consecutive ranges r[i], r[i+1]: r[i].End <= r[i+1].Start.
type Sequence []ByteRange

// Valid reports whether the sequence satisfies the ordering invariant
// and stays within [0, n].
func (s Sequence) Valid(n int) bool {
	prev := 0
	for _, r := range s {
		if r.Start < prev || r.End < r.Start || r.End > n {
			return false
		}
		prev = r.End
	}
	return true
}
