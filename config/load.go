package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional on-disk config file. Sections are pointers
// so that an absent section leaves the compiled-in defaults untouched.
type fileConfig struct {
	Render *RenderConfig `yaml:"render"`
	Camera *CameraConfig `yaml:"camera"`
	Debug  *DebugConfig  `yaml:"debug"`
}

// Load applies overrides from a YAML config file. A missing file is not an
// error; the defaults from init() stay in effect.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.Render != nil {
		C = *f.Render
	}
	if f.Camera != nil {
		Camera = *f.Camera
	}
	if f.Debug != nil {
		Debug = *f.Debug
	}

	return nil
}
