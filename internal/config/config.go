package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	FrameTapSize = 120

	// Panel dimensions
	PanelWidth     = 260
	PanelX         = WindowWidth - PanelWidth - 12
	PanelY         = 12
	PanelRowHeight = 34
	PanelPadding   = 10
	SwatchSize     = 18

	// Camera
	CameraFov  = 75.0
	CameraNear = 0.1
	CameraFar  = 100.0
	CameraX    = 5.0
	CameraY    = 3.0
	CameraZ    = 5.0

	// OrbitDamping is the fraction of angular velocity removed each frame.
	OrbitDamping     = 0.05
	OrbitSensitivity = 0.005
	ZoomStep         = 0.95
	MinDistance      = 0.5
	MaxDistance      = 40.0

	// InitialTilt is the fixed rotation about X applied to each freshly
	// generated cloud. The model matrix applies it after the spin about the
	// cloud's own Y axis, so the tilted disc does not wobble.
	InitialTilt = 0.05 * math.Pi

	// MinPointPixels keeps far points from vanishing entirely.
	MinPointPixels = 1.0
)

// Config is the on-disk shape of a galaxy TOML file. Every field is optional;
// absent keys keep their defaults.
type Config struct {
	Galaxy Parameters `toml:"galaxy"`
}

// Load reads the TOML file at path over Default(). An empty path returns the
// defaults untouched.
func Load(path string) (Parameters, error) {
	cfg := Config{Galaxy: Default()}
	if path == "" {
		return cfg.Galaxy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Parameters{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg.Galaxy, nil
}
