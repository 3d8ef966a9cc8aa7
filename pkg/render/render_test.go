package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytegrep/bytegrep/pkg/types"
)

func result(name string, data []byte, ranges ...types.ByteRange) *types.SourceResult {
	return &types.SourceResult{Name: name, Data: data, Ranges: ranges}
}

func renderTo(t *testing.T, mode types.Mode, showNames bool, results ...*types.SourceResult) (string, bool) {
	t.Helper()
	var buf bytes.Buffer
	r := New(&buf, mode, showNames, nil)
	matched, err := r.Render(results)
	require.NoError(t, err)
	return buf.String(), matched
}

func TestRender_FilesWithMatches(t *testing.T) {
	out, matched := renderTo(t, types.Mode{ListMatched: true}, false,
		result("a", nil, types.ByteRange{Start: 0, End: 1}),
		result("b", nil),
		result("c", nil, types.ByteRange{Start: 2, End: 3}),
	)

	assert.Equal(t, "a\nc\n", out)
	assert.True(t, matched)
}

func TestRender_FilesWithoutMatches(t *testing.T) {
	out, matched := renderTo(t, types.Mode{ListUnmatched: true}, false,
		result("a", nil, types.ByteRange{Start: 0, End: 1}),
		result("b", nil),
	)

	assert.Equal(t, "b\n", out)
	assert.True(t, matched, "listing an unmatched file satisfies the -L mode condition")
}

func TestRender_FilesWithoutMatches_AllMatched(t *testing.T) {
	out, matched := renderTo(t, types.Mode{ListUnmatched: true}, false,
		result("a", nil, types.ByteRange{Start: 0, End: 1}),
	)

	assert.Empty(t, out)
	assert.False(t, matched)
}

func TestRender_DefaultModeIsFilesWithMatches(t *testing.T) {
	out, _ := renderTo(t, types.Mode{}, false,
		result("a", nil, types.ByteRange{Start: 0, End: 1}),
	)
	assert.Equal(t, "a\n", out)
}

func TestRender_ByteOffsets(t *testing.T) {
	data := make([]byte, 64)
	out, matched := renderTo(t, types.Mode{ShowOffset: true}, false,
		result("a", data,
			types.ByteRange{Start: 0, End: 2},
			types.ByteRange{Start: 31, End: 33},
			types.ByteRange{Start: 63, End: 64},
		),
	)

	assert.Equal(t, "0x0\n0x1f\n0x3f\n", out)
	assert.True(t, matched)
}

func TestRender_ByteOffsetsWithNames(t *testing.T) {
	out, _ := renderTo(t, types.Mode{ShowOffset: true}, true,
		result("f1", make([]byte, 8), types.ByteRange{Start: 4, End: 6}),
		result("f2", make([]byte, 8), types.ByteRange{Start: 0, End: 1}),
	)

	assert.Equal(t, "f1:0x4\nf2:0x0\n", out)
}

func TestRender_MatchedBytes(t *testing.T) {
	data := []byte{0x01, 0xff, 0xfe, 0x02}
	out, _ := renderTo(t, types.Mode{ShowBytes: true}, false,
		result("a", data, types.ByteRange{Start: 1, End: 3}),
	)

	// Raw bytes pass through verbatim, newline-terminated.
	assert.Equal(t, []byte{0xff, 0xfe, '\n'}, []byte(out))
}

func TestRender_MatchedBytesWithName(t *testing.T) {
	out, _ := renderTo(t, types.Mode{ShowBytes: true}, true,
		result("bin", []byte("xmagicx"), types.ByteRange{Start: 1, End: 6}),
	)

	assert.Equal(t, "bin:magic\n", out)
}

func TestRender_OffsetAndBytesCombined(t *testing.T) {
	out, _ := renderTo(t, types.Mode{ShowOffset: true, ShowBytes: true}, true,
		result("bin", []byte("..abc."), types.ByteRange{Start: 2, End: 5}),
	)

	assert.Equal(t, "bin:0x2:abc\n", out)
}

func TestRender_ZeroLengthRange(t *testing.T) {
	out, matched := renderTo(t, types.Mode{ShowOffset: true, ShowBytes: true}, false,
		result("a", []byte("xy"), types.ByteRange{Start: 1, End: 1}),
	)

	assert.Equal(t, "0x1:\n", out)
	assert.True(t, matched)
}

func TestRender_SourcesInInputOrder(t *testing.T) {
	out, _ := renderTo(t, types.Mode{ShowOffset: true}, true,
		result("z", make([]byte, 4), types.ByteRange{Start: 0, End: 1}),
		result("a", make([]byte, 4), types.ByteRange{Start: 1, End: 2}),
	)

	assert.Equal(t, "z:0x0\na:0x1\n", out)
}

func TestRender_NoResults(t *testing.T) {
	out, matched := renderTo(t, types.Mode{}, false)
	assert.Empty(t, out)
	assert.False(t, matched)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled("always", &buf))
	assert.False(t, ColorEnabled("never", &buf))
	assert.False(t, ColorEnabled("auto", &buf), "non-terminal writer disables auto color")
}

func TestStyles_DisabledPassthrough(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(false)
	_, err := s.name.Fprint(&buf, "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
}
