package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultsFileName is the optional per-user defaults file, looked up under
// the user configuration directory (e.g. ~/.config/picogen/picogen.yaml).
const DefaultsFileName = "picogen.yaml"

// Defaults carries per-user flag defaults loaded from picogen.yaml. Zero
// values leave the built-in defaults untouched.
type Defaults struct {
	Board        string `yaml:"board"`
	ConsoleUART  *bool  `yaml:"console_uart"`
	ConsoleUSB   *bool  `yaml:"console_usb"`
	Debugger     *int   `yaml:"debugger"`
	CompilerPath string `yaml:"compiler_path"`
}

// DefaultsPath returns the expected location of the per-user defaults file.
func DefaultsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "picogen", DefaultsFileName), nil
}

// LoadDefaults reads the per-user defaults file. A missing file is not an
// error; it yields zero Defaults.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Apply overlays the loaded defaults onto a Config that still has its
// built-in default values. Explicit flag values are applied afterwards by
// the front-end and win over anything set here.
func (d Defaults) Apply(cfg *Config) {
	if d.Board != "" {
		cfg.BoardType = d.Board
	}
	if d.ConsoleUART != nil {
		cfg.ConsoleUART = *d.ConsoleUART
	}
	if d.ConsoleUSB != nil {
		cfg.ConsoleUSB = *d.ConsoleUSB
	}
	if d.Debugger != nil {
		cfg.Debugger = *d.Debugger
	}
	if d.CompilerPath != "" {
		cfg.CompilerPath = d.CompilerPath
	}
}
