// Package project materializes a generated project on disk: it creates the
// project directory, guards against accidental overwrite, copies the SDK
// import helper, renders the source and build descriptor, prepares the build
// directory, writes optional IDE files, and optionally invokes the external
// build tooling.
package project

import (
	"fmt"

	"github.com/picotools/picogen/internal/config"
)

// Sentinel errors for the project package. Each wraps its error category so
// front-ends can branch with errors.Is.
var (
	// ErrProjectExists indicates the target directory already holds a
	// generated project and overwriting was not permitted.
	ErrProjectExists = fmt.Errorf("%w: there already appears to be a project in this folder", config.ErrCollision)

	// ErrSDKImportMissing indicates the SDK import helper was not found
	// under the SDK path, which usually means the SDK path is wrong.
	ErrSDKImportMissing = fmt.Errorf("%w: SDK import file not found, check the SDK path", config.ErrIO)
)
