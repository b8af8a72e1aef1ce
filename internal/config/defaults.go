package config

import (
	_ "embed"
)

//go:embed defaults/tilt48.yaml
var defaultYAML []byte
