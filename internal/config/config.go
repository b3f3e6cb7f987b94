// Package config defines the resolved generation configuration and the
// loaders that feed it: the PICO_SDK_PATH environment lookup, board header
// enumeration, the optional pico_configs.tsv advanced-configuration catalog,
// and an optional YAML defaults file for the CLI front-end.
package config

// Language selects the generated source language mode.
type Language int

const (
	LangC Language = iota
	LangCPP
)

// SourceExt returns the generated main-file extension for the language mode.
func (l Language) SourceExt() string {
	if l == LangCPP {
		return ".cpp"
	}
	return ".c"
}

func (l Language) String() string {
	if l == LangCPP {
		return "C++"
	}
	return "C"
}

// Define is one pass-through preprocessor definition from the advanced
// configuration settings. Defines are kept as an ordered slice, not a map,
// so the rendered build descriptor is byte-identical across runs.
type Define struct {
	Name  string
	Value string
}

// Config is the resolved user intent for one generation run. It is built
// once by the front-end (flags or wizard) and is read-only to the engine.
type Config struct {
	SDKPath     string // resolved Pico SDK location, must be a directory
	ProjectRoot string // directory the project folder is created under
	ProjectName string // project folder, file base name and CMake target

	BoardType    string   // board identifier, e.g. "pico", "pico_w"
	Features     []string // selected feature keys in user order
	WantExamples bool     // prepend all stdlib example keys to Features

	Language      Language
	ConsoleUART   bool
	ConsoleUSB    bool
	RunFromRAM    bool
	CPPExceptions bool // meaningful only for LangCPP
	CPPRTTI       bool // meaningful only for LangCPP

	Overwrite bool // allow regenerating over an existing project
	RunBuild  bool // invoke the build driver after configuring

	Defines []Define // advanced settings passed through as compile definitions

	IDETargets   []string // IDE integrations to generate; "vscode" is supported
	Debugger     int      // index into the catalog debugger list
	CompilerPath string   // compiler path for the VS Code properties file
}

// WantsIDE reports whether the named IDE integration was requested.
func (c *Config) WantsIDE(name string) bool {
	for _, t := range c.IDETargets {
		if t == name {
			return true
		}
	}
	return false
}
