// Package preset loads named byte-pattern presets from YAML, so common
// binary signatures can be referenced by name instead of spelling out
// escape sequences on the command line.
package preset

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one named pattern.
type Preset struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

// presetFile is the top-level YAML structure: a "patterns" array.
type presetFile struct {
	Patterns []Preset `yaml:"patterns"`
}

// Loader loads presets from YAML.
type Loader struct {
	fs fs.FS
}

// NewLoader creates a loader backed by the embedded builtin presets.
func NewLoader() *Loader {
	return &Loader{fs: builtinFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load parses presets from YAML bytes.
func (l *Loader) Load(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, p := range f.Patterns {
		if p.ID == "" {
			return nil, fmt.Errorf("preset without id")
		}
		if p.Pattern == "" {
			return nil, fmt.Errorf("preset %s has no pattern", p.ID)
		}
	}

	return f.Patterns, nil
}

// LoadFile loads presets from a YAML file path.
func (l *Loader) LoadFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}

// LoadBuiltin loads the embedded builtin presets.
func (l *Loader) LoadBuiltin() ([]Preset, error) {
	data, err := fs.ReadFile(l.fs, "presets/builtin.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin presets: %w", err)
	}
	return l.Load(data)
}

// Find returns the preset with the given id.
func Find(presets []Preset, id string) (Preset, error) {
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset: %s", id)
}
