package config

import "errors"

// Error categories for the generation engine. Every fatal error raised by
// the engine wraps exactly one of these, so front-ends can branch with
// errors.Is instead of matching message text.
var (
	// ErrConfiguration covers invalid or incomplete user configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrCollision indicates a project already exists at the target location
	// and overwriting was not permitted.
	ErrCollision = errors.New("project already exists")

	// ErrIO covers filesystem failures while materializing a project.
	ErrIO = errors.New("i/o error")

	// ErrExternalTool indicates the build-configuration tool or build driver
	// exited with a non-zero status.
	ErrExternalTool = errors.New("external tool failed")
)

// Sentinel errors for specific configuration failures. All wrap
// ErrConfiguration.
var (
	// ErrMissingProjectName indicates no project name was supplied.
	ErrMissingProjectName = wrapConfig("project name not specified")

	// ErrSDKPathNotSet indicates PICO_SDK_PATH is unset and no path was given.
	ErrSDKPathNotSet = wrapConfig("unable to locate the Pico SDK, PICO_SDK_PATH is not set")

	// ErrSDKPathNotDir indicates the SDK path does not point at a directory.
	ErrSDKPathNotDir = wrapConfig("unable to locate the Pico SDK, PICO_SDK_PATH does not point to a directory")

	// ErrInvalidProjectRoot indicates the output location does not exist.
	ErrInvalidProjectRoot = wrapConfig("invalid project path")
)

// configError attaches a detail message to the ErrConfiguration category.
type configError struct {
	msg string
}

func (e *configError) Error() string { return "config: " + e.msg }

func (e *configError) Unwrap() error { return ErrConfiguration }

func wrapConfig(msg string) error {
	return &configError{msg: msg}
}
