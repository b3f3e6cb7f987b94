package defs

import "os"

// Common file names used across the project.
const (
	// CMakeListsFile is the generated build descriptor consumed by CMake.
	CMakeListsFile = "CMakeLists.txt"

	// CMakeCacheFile is the CMake cache created inside the build directory.
	// It is removed on re-generation so board or SDK path changes take effect.
	CMakeCacheFile = "CMakeCache.txt"

	// SDKImportFile is the SDK locator helper copied into every project from
	// <sdk>/external/pico_sdk_import.cmake.
	SDKImportFile = "pico_sdk_import.cmake"

	// BuildDir is the out-of-tree build directory created inside the project.
	BuildDir = "build"
)

// VS Code integration file names under .vscode/.
const (
	VSCodeDir            = ".vscode"
	VSCodeLaunchJSON     = "launch.json"
	VSCodePropertiesJSON = "c_cpp_properties.json"
	VSCodeSettingsJSON   = "settings.json"
	VSCodeExtensionsJSON = "extensions.json"
)

// CompilerName is the cross compiler expected on PATH for Pico builds.
const CompilerName = "arm-none-eabi-gcc"

// File system permissions for generated artifacts.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
