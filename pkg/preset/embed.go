package preset

import "embed"

//go:embed presets/builtin.yaml
var builtinFS embed.FS
