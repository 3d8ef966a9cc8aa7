package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin(t *testing.T) {
	presets, err := NewLoader().LoadBuiltin()
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	elf, err := Find(presets, "elf")
	require.NoError(t, err)
	assert.Equal(t, `\x7fELF`, elf.Pattern)
}

func TestLoad_CustomFile(t *testing.T) {
	yaml := `patterns:
  - id: mz
    name: DOS executable
    pattern: 'MZ'
  - id: cafebabe
    name: Java class file
    pattern: '\xca\xfe\xba\xbe'
`
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	presets, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	p, err := Find(presets, "cafebabe")
	require.NoError(t, err)
	assert.Equal(t, `\xca\xfe\xba\xbe`, p.Pattern)
}

func TestLoad_MissingID(t *testing.T) {
	_, err := NewLoader().Load([]byte("patterns:\n  - pattern: 'x'\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without id")
}

func TestLoad_MissingPattern(t *testing.T) {
	_, err := NewLoader().Load([]byte("patterns:\n  - id: broken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pattern")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := NewLoader().Load([]byte("patterns: ["))
	assert.Error(t, err)
}

func TestFind_Unknown(t *testing.T) {
	_, err := Find(nil, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuiltinPresetsCompile(t *testing.T) {
	// Every builtin pattern must at least parse as a valid expression.
	presets, err := NewLoader().LoadBuiltin()
	require.NoError(t, err)

	for _, p := range presets {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Pattern, "preset %s", p.ID)
	}
}
