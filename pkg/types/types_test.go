package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Valid(t *testing.T) {
	cases := []struct {
		name  string
		seq   Sequence
		n     int
		valid bool
	}{
		{"empty", nil, 0, true},
		{"ordered", Sequence{{0, 2}, {2, 4}}, 4, true},
		{"zero length", Sequence{{1, 1}}, 2, true},
		{"overlapping", Sequence{{0, 3}, {2, 4}}, 4, false},
		{"reversed range", Sequence{{3, 1}}, 4, false},
		{"past end", Sequence{{0, 5}}, 4, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.seq.Valid(tc.n))
		})
	}
}

func TestMode_FileListing(t *testing.T) {
	assert.True(t, Mode{}.FileListing(), "default mode lists matched files")
	assert.True(t, Mode{ListMatched: true}.FileListing())
	assert.True(t, Mode{ListUnmatched: true}.FileListing())
	assert.False(t, Mode{ShowOffset: true}.FileListing())
	assert.False(t, Mode{ShowBytes: true}.FileListing())

	// The filename family wins when both families are requested.
	assert.True(t, Mode{ListMatched: true, ShowOffset: true}.FileListing())
}

func TestNamePolicy_ShowNames(t *testing.T) {
	assert.False(t, NameAuto.ShowNames(1), "single source suppresses names")
	assert.True(t, NameAuto.ShowNames(2))
	assert.True(t, NameAuto.ShowNames(5))

	assert.True(t, NameShow.ShowNames(1))
	assert.False(t, NameSuppress.ShowNames(3))
}

func TestSourceResult_Matched(t *testing.T) {
	assert.False(t, (&SourceResult{}).Matched())
	assert.True(t, (&SourceResult{Ranges: Sequence{{0, 0}}}).Matched(),
		"a zero-length range still counts as matched")
}
