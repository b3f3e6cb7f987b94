// Package wizard provides the interactive project setup wizard used by
// `picogen new` when no project name is given on the command line.
package wizard

import (
	"errors"
	"strings"

	"github.com/picotools/picogen/internal/config"
)

// Result holds the user's selections from the setup wizard.
type Result struct {
	ProjectName string   // Project name (required)
	BoardType   string   // Target board, e.g. "pico" or "pico_w"
	Features    []string // Selected peripheral feature keys
	Wireless    string   // Wireless option key, empty or "picow_none" for none

	WantExamples  bool // Include stdio example code
	RunFromRAM    bool // Run the binary from RAM instead of flash
	UseCPP        bool // Generate a C++ project
	CPPExceptions bool // Enable C++ exceptions
	CPPRTTI       bool // Enable C++ RTTI
	ConsoleUART   bool // Route stdio over UART
	ConsoleUSB    bool // Route stdio over USB CDC

	Debugger   int  // Index into the debugger catalog
	WantVSCode bool // Emit VS Code integration files
	RunBuild   bool // Run the build after generating
}

// Apply copies the wizard selections onto the configuration.
func (r *Result) Apply(cfg *config.Config) {
	cfg.ProjectName = r.ProjectName
	cfg.BoardType = r.BoardType
	cfg.Features = append([]string(nil), r.Features...)
	if r.Wireless != "" && r.Wireless != "picow_none" {
		cfg.Features = append(cfg.Features, r.Wireless)
	}
	cfg.WantExamples = r.WantExamples
	cfg.RunFromRAM = r.RunFromRAM
	if r.UseCPP {
		cfg.Language = config.LangCPP
	} else {
		cfg.Language = config.LangC
	}
	cfg.CPPExceptions = r.CPPExceptions
	cfg.CPPRTTI = r.CPPRTTI
	cfg.ConsoleUART = r.ConsoleUART
	cfg.ConsoleUSB = r.ConsoleUSB
	cfg.Debugger = r.Debugger
	if r.WantVSCode && !cfg.WantsIDE("vscode") {
		cfg.IDETargets = append(cfg.IDETargets, "vscode")
	}
	cfg.RunBuild = r.RunBuild
}

// wantsWireless reports whether the selected board has a wireless chip.
func (r *Result) wantsWireless() bool {
	return strings.HasPrefix(r.BoardType, "pico_w") || strings.HasPrefix(r.BoardType, "pico2_w")
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
)
