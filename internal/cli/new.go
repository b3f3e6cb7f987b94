package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/picotools/picogen/internal/buildtool"
	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/cli/wizard"
	"github.com/picotools/picogen/internal/config"
	"github.com/picotools/picogen/internal/defs"
	"github.com/picotools/picogen/internal/project"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new Pico project",
	Long: `Generate a new Pico project in a subdirectory of the output location.

With a project name and flags the generation runs non-interactively.
Without a project name, and when run from a terminal, an interactive
wizard collects the configuration instead.

Examples:
  picogen new blink -f spi -f i2c --project vscode
  picogen new doorbell --board pico_w -f picow_led --examples --build
  picogen new                        Run the interactive wizard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	registerNewFlags(newCmd)
}

func registerNewFlags(cmd *cobra.Command) {
	cmd.Flags().String("output-dir", "", "Location the project folder is created under (default: current directory)")
	cmd.Flags().String("board", "pico", "Board type (see \"picogen boards\")")
	cmd.Flags().StringArrayP("feature", "f", nil, "Add a feature to the generated project (repeatable)")
	cmd.Flags().BoolP("examples", "x", false, "Add example code for the Pico standard library")
	cmd.Flags().StringArrayP("project", "p", nil, "Generate project files for an IDE; supported: vscode")
	cmd.Flags().IntP("debugger", "d", 0, "Debugger index (see wizard for names)")
	cmd.Flags().Bool("run-from-ram", false, "Run the program from RAM rather than flash")
	cmd.Flags().Bool("uart", true, "Console output to UART")
	cmd.Flags().Bool("usb", false, "Console output to USB (disables other USB functionality)")
	cmd.Flags().Bool("cpp", false, "Generate C++ code")
	cmd.Flags().Bool("cpp-exceptions", false, "Enable C++ exceptions (uses more memory)")
	cmd.Flags().Bool("cpp-rtti", false, "Enable C++ RTTI (uses more memory)")
	cmd.Flags().Bool("overwrite", false, "Overwrite any existing project and files")
	cmd.Flags().BoolP("build", "b", false, "Build after the project is created")
	cmd.Flags().Bool("skip-configure", false, "Do not run CMake after generation")
	cmd.Flags().StringArrayP("define", "D", nil, "Advanced setting passed through as NAME=VALUE compile definition (repeatable)")
	cmd.Flags().StringP("tsv", "t", "", "Alternative pico_configs.tsv file for advanced settings")
	cmd.Flags().String("compiler-path", "", "Override the compiler path written to the VS Code properties file")
	cmd.Flags().Bool("non-interactive", false, "Never run the interactive wizard")
}

func runNew(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cat := catalog.New()

	sdkPath, err := config.ResolveSDKPath()
	if err != nil {
		return err
	}

	outputDir := getStringFlag(cmd, "output-dir")
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		outputDir = cwd
	}

	cfg := &config.Config{
		SDKPath:     sdkPath,
		ProjectRoot: outputDir,
		BoardType:   "pico",
		ConsoleUART: true,
	}

	// Per-user defaults are applied first; explicit flags win below.
	if path, err := config.DefaultsPath(); err == nil {
		defaults, err := config.LoadDefaults(path)
		if err != nil {
			_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render(fmt.Sprintf("Warning: ignoring defaults file: %v", err)))
		} else {
			defaults.Apply(cfg)
		}
	}

	applyNewFlags(cmd, cfg)
	if len(args) > 0 {
		cfg.ProjectName = args[0]
	}

	defines, err := collectDefines(cmd)
	if err != nil {
		return err
	}
	cfg.Defines = defines

	checkDefinesAgainstCatalog(out, tsvPath(cmd), defines)

	// Out-of-range debugger indexes fall back to the default probe rather
	// than failing; the IDE generator still validates its own input.
	if clamped := cat.ClampDebugger(cfg.Debugger); clamped != cfg.Debugger {
		_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render(fmt.Sprintf("Warning: debugger index %d out of range, using 0", cfg.Debugger)))
		cfg.Debugger = clamped
	}

	if cfg.CompilerPath == "" {
		cfg.CompilerPath = findCompiler(out)
	}

	interactive := !getBoolFlag(cmd, "non-interactive") && isatty.IsTerminal(os.Stdin.Fd())

	if cfg.ProjectName == "" {
		if !interactive {
			return config.ErrMissingProjectName
		}
		boards, err := config.LoadBoardTypes(sdkPath)
		if err != nil {
			return fmt.Errorf("enumerate boards: %w", err)
		}
		result, err := wizard.Run(cat, boards, cfg)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Generation cancelled.")
				return nil
			}
			return err
		}
		result.Apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Collision check up front so an interactive run can offer to
	// overwrite instead of failing.
	projectDir := filepath.Join(cfg.ProjectRoot, cfg.ProjectName)
	if project.Exists(projectDir) && !cfg.Overwrite {
		if !interactive {
			return project.ErrProjectExists
		}
		ok, err := wizard.ConfirmOverwrite(cfg.ProjectName)
		if err != nil {
			return err
		}
		if !ok {
			return project.ErrProjectExists
		}
		cfg.Overwrite = true
	}

	var builder buildtool.Runner
	if !getBoolFlag(cmd, "skip-configure") {
		builder = buildtool.New(out, nil)
	}

	mat := project.New(cat, builder, nil)
	result, err := mat.Generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	pairs := []kvPair{
		{"Project", cfg.ProjectName},
		{"Board", cfg.BoardType},
		{"Location", result.ProjectDir},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Pico project generated", renderKeyValueLines(pairs)))

	if result.Built {
		_, _ = fmt.Fprintln(out, "\nIf the application has built correctly, you can now transfer it to the Raspberry Pi Pico board")
	}
	return nil
}

// applyNewFlags copies explicitly set or defaulted flag values onto the
// config. Flags the user did not touch leave defaults-file values alone.
func applyNewFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("board") || cfg.BoardType == "" {
		cfg.BoardType = getStringFlag(cmd, "board")
	}
	if flags.Changed("uart") {
		cfg.ConsoleUART = getBoolFlag(cmd, "uart")
	}
	if flags.Changed("usb") {
		cfg.ConsoleUSB = getBoolFlag(cmd, "usb")
	}
	if flags.Changed("debugger") {
		cfg.Debugger, _ = flags.GetInt("debugger")
	}
	if flags.Changed("compiler-path") {
		cfg.CompilerPath = getStringFlag(cmd, "compiler-path")
	}

	cfg.Features, _ = flags.GetStringArray("feature")
	cfg.WantExamples = getBoolFlag(cmd, "examples")
	cfg.IDETargets, _ = flags.GetStringArray("project")
	cfg.RunFromRAM = getBoolFlag(cmd, "run-from-ram")
	cfg.CPPExceptions = getBoolFlag(cmd, "cpp-exceptions")
	cfg.CPPRTTI = getBoolFlag(cmd, "cpp-rtti")
	cfg.Overwrite = getBoolFlag(cmd, "overwrite")
	cfg.RunBuild = getBoolFlag(cmd, "build")

	if getBoolFlag(cmd, "cpp") {
		cfg.Language = config.LangCPP
	}
}

// collectDefines parses repeated --define NAME=VALUE flags, preserving the
// order they were given in.
func collectDefines(cmd *cobra.Command) ([]config.Define, error) {
	raw, _ := cmd.Flags().GetStringArray("define")

	var defines []config.Define
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: invalid --define %q, expected NAME=VALUE", config.ErrConfiguration, entry)
		}
		defines = append(defines, config.Define{Name: name, Value: value})
	}
	return defines, nil
}

// checkDefinesAgainstCatalog warns about advanced settings unknown to the
// TSV catalog when one is available. Unknown names still pass through, and
// an unreadable catalog degrades to a warning rather than blocking the run.
func checkDefinesAgainstCatalog(out io.Writer, path string, defines []config.Define) {
	items, err := config.LoadConfigItems(path)
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render(fmt.Sprintf("Warning: ignoring configuration catalog: %v", err)))
		return
	}
	if len(items) == 0 || len(defines) == 0 {
		return
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.Name] = true
	}
	for _, d := range defines {
		if !known[d.Name] {
			_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render(fmt.Sprintf("Warning: %s is not a known configuration item", d.Name)))
		}
	}
}

// tsvPath resolves the advanced-settings catalog location: the --tsv flag
// if given, otherwise pico_configs.tsv next to the picogen binary.
func tsvPath(cmd *cobra.Command) string {
	if path := getStringFlag(cmd, "tsv"); path != "" {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return "pico_configs.tsv"
	}
	return filepath.Join(filepath.Dir(exe), "pico_configs.tsv")
}

// findCompiler locates the cross compiler for the VS Code properties file.
// A missing compiler only degrades the IDE integration, so it warns rather
// than failing generation.
func findCompiler(out io.Writer) string {
	if path, err := exec.LookPath(defs.CompilerName); err == nil {
		return path
	}
	_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render(
		"Warning: unable to find the `"+defs.CompilerName+"` compiler; you will need it installed to build the project"))
	return "/usr/bin/" + defs.CompilerName
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
