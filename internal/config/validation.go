package config

import (
	"fmt"
	"os"
)

// Validate checks the invariants the generation engine relies on. It is run
// by the front-end after assembling the Config and before any filesystem
// side effect; no partial generation is attempted on failure.
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return ErrMissingProjectName
	}

	if c.SDKPath == "" {
		return ErrSDKPathNotSet
	}
	info, err := os.Stat(c.SDKPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSDKPathNotDir, c.SDKPath)
	}

	if c.ProjectRoot == "" {
		return ErrInvalidProjectRoot
	}
	info, err = os.Stat(c.ProjectRoot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidProjectRoot, c.ProjectRoot)
	}

	return nil
}
