package generator

import (
	"fmt"
	"runtime"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
	"github.com/picotools/picogen/internal/defs"
)

// vscodeContext parameterizes the VS Code template set.
type vscodeContext struct {
	GDBPath        string
	DebuggerConfig string
	CompilerPath   string
}

// RenderVSCode produces the four VS Code integration files, keyed by file
// name, for writing into the .vscode directory. The debugger index is
// validated here as well as at the front-end; an out-of-range index is a
// hard error rather than a panic deep inside a template.
func RenderVSCode(cat *catalog.Catalog, cfg *config.Config) (map[string]string, error) {
	debuggers := cat.Debuggers()
	if cfg.Debugger < 0 || cfg.Debugger >= len(debuggers) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDebugger, cfg.Debugger)
	}

	ctx := vscodeContext{
		GDBPath:        defaultGDBPath(),
		DebuggerConfig: debuggers[cfg.Debugger].ConfigFile,
		CompilerPath:   cfg.CompilerPath,
	}

	files := make(map[string]string, 4)
	for name, tmpl := range map[string]string{
		defs.VSCodeLaunchJSON:     "launch.json.tmpl",
		defs.VSCodePropertiesJSON: "c_cpp_properties.json.tmpl",
		defs.VSCodeSettingsJSON:   "settings.json.tmpl",
		defs.VSCodeExtensionsJSON: "extensions.json.tmpl",
	} {
		rendered, err := renderTemplate(tmpl, ctx)
		if err != nil {
			return nil, err
		}
		files[name] = string(rendered)
	}
	return files, nil
}

// defaultGDBPath picks the debugger binary name for the host platform.
// Linux distributions ship the multiarch build; Windows installs use the
// bare-metal toolchain's gdb.
func defaultGDBPath() string {
	if runtime.GOOS == "windows" {
		return "arm-none-eabi-gdb"
	}
	return "gdb-multiarch"
}
