package generator

import (
	"strings"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
)

// sdkVersionFloor is the oldest SDK release the generated project accepts.
const sdkVersionFloor = "1.4.0"

// standardLibraries is linked into every build. Space separated if more
// than one is ever needed.
const standardLibraries = "pico_stdlib"

// RenderCMake produces the CMakeLists.txt build descriptor. Everything is
// emitted in a fixed order from insertion-ordered data, so repeated runs
// with the same Config yield identical bytes. Directive and variable names
// are a wire-format contract with CMake and the SDK; do not reword them.
func RenderCMake(cat *catalog.Catalog, cfg *config.Config, features []string) string {
	var b strings.Builder
	name := cfg.ProjectName

	// CMake accepts forward slashes in path literals on every platform,
	// which sidesteps backslash escaping on Windows.
	sdkPath := strings.ReplaceAll(cfg.SDKPath, "\\", "/")

	b.WriteString("# Generated Cmake Pico project file\n\n")
	b.WriteString("cmake_minimum_required(VERSION 3.13)\n\n")
	b.WriteString("set(CMAKE_C_STANDARD 11)\n")
	b.WriteString("set(CMAKE_CXX_STANDARD 17)\n\n")
	b.WriteString("# Initialise pico_sdk from installed location\n")
	b.WriteString("# (note this can come from environment, CMake cache etc)\n")
	b.WriteString("set(PICO_SDK_PATH \"" + sdkPath + "\")\n\n")
	b.WriteString("set(PICO_BOARD " + cfg.BoardType + " CACHE STRING \"Board type\")\n\n")
	b.WriteString("# Pull in Raspberry Pi Pico SDK (must be before project)\n")
	b.WriteString("include(pico_sdk_import.cmake)\n\n")
	b.WriteString("if (PICO_SDK_VERSION_STRING VERSION_LESS \"" + sdkVersionFloor + "\")\n")
	b.WriteString("  message(FATAL_ERROR \"Raspberry Pi Pico SDK version " + sdkVersionFloor +
		" (or later) required. Your version is ${PICO_SDK_VERSION_STRING}\")\n")
	b.WriteString("endif()\n\n")
	b.WriteString("project(" + name + " C CXX ASM)\n")

	if cfg.CPPExceptions {
		b.WriteString("\nset(PICO_CXX_ENABLE_EXCEPTIONS 1)\n")
	}
	if cfg.CPPRTTI {
		b.WriteString("\nset(PICO_CXX_ENABLE_RTTI 1)\n")
	}

	b.WriteString("\n# Initialise the Raspberry Pi Pico SDK\n")
	b.WriteString("pico_sdk_init()\n\n")
	b.WriteString("# Add executable. Default name is the project name, version 0.1\n\n")

	if len(cfg.Defines) > 0 {
		b.WriteString("# Add any PICO_CONFIG entries specified in the Advanced settings\n")
		for _, d := range cfg.Defines {
			b.WriteString("add_compile_definitions(" + d.Name + "=" + defineValue(d.Value) + ")\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("add_executable(" + name + " " + name + cfg.Language.SourceExt() + " )\n\n")
	b.WriteString("pico_set_program_name(" + name + " \"" + name + "\")\n")
	b.WriteString("pico_set_program_version(" + name + " \"0.1\")\n\n")

	if cfg.RunFromRAM {
		b.WriteString("# no_flash means the target is to run from RAM\n")
		b.WriteString("pico_set_binary_type(" + name + " no_flash)\n\n")
	}

	// Console routing is always stated explicitly, never left to defaults.
	b.WriteString("pico_enable_stdio_uart(" + name + " " + boolFlag(cfg.ConsoleUART) + ")\n")
	b.WriteString("pico_enable_stdio_usb(" + name + " " + boolFlag(cfg.ConsoleUSB) + ")\n\n")

	b.WriteString("# Add the standard library to the build\n")
	b.WriteString("target_link_libraries(" + name + "\n")
	b.WriteString("        " + standardLibraries + ")\n\n")

	b.WriteString("# Add the standard include files to the build\n")
	b.WriteString("target_include_directories(" + name + " PRIVATE\n")
	b.WriteString("  ${CMAKE_CURRENT_LIST_DIR}\n")
	b.WriteString("  ${CMAKE_CURRENT_LIST_DIR}/.. # for our common lwipopts or any other standard includes, if required\n")
	b.WriteString(")\n\n")

	if libs := resolveLibraries(cat, features); len(libs) > 0 {
		b.WriteString("# Add any user requested libraries\n")
		b.WriteString("target_link_libraries(" + name + "\n")
		for _, lib := range libs {
			b.WriteString("        " + lib + "\n")
		}
		b.WriteString("        )\n\n")
	}

	b.WriteString("pico_add_extra_outputs(" + name + ")\n\n")

	return b.String()
}

// resolveLibraries maps the effective feature list to link targets,
// preserving order and skipping keys with no catalog entry or library name.
func resolveLibraries(cat *catalog.Catalog, features []string) []string {
	var libs []string
	for _, key := range features {
		d, ok := cat.Lookup(key)
		if !ok || d.LibraryName == "" {
			continue
		}
		libs = append(libs, d.LibraryName)
	}
	return libs
}

// defineValue translates boolean-like advanced setting values to the 1/0
// the preprocessor expects; anything else passes through unchanged.
func defineValue(v string) string {
	switch v {
	case "True":
		return "1"
	case "False":
		return "0"
	}
	return v
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
