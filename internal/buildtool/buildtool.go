// Package buildtool shells out to the external build-configuration tool
// (cmake) and the best available build driver for the host platform. The
// engine does not interpret tool output; it streams it through and
// propagates the exit status.
package buildtool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/picotools/picogen/internal/config"
)

// Tool is the resolved generator/driver pair for the host.
type Tool struct {
	Generator string   // cmake -G argument; empty means cmake's default
	BuildCmd  []string // build driver command line
}

// Runner configures and builds a generated project.
type Runner interface {
	// Configure runs cmake in the project's build directory.
	Configure(ctx context.Context, buildDir string) error

	// Build runs the detected build driver in the build directory.
	Build(ctx context.Context, buildDir string) error
}

// runner is the concrete implementation of Runner.
type runner struct {
	tool     Tool
	out      io.Writer // combined stdout/stderr of the external processes
	logger   *slog.Logger
	lookPath func(string) (string, error)
}

// New creates a Runner that streams external tool output to out.
func New(out io.Writer, logger *slog.Logger) Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &runner{out: out, logger: logger, lookPath: exec.LookPath}
	r.tool = r.detect()
	return r
}

// detect picks the generator and build driver. Ninja is preferred wherever
// it is installed; Windows falls back to MinGW or NMake makefiles, other
// platforms to plain make with one job per CPU.
func (r *runner) detect() Tool {
	if runtime.GOOS == "windows" {
		if _, err := r.lookPath("mingw32-make"); err == nil {
			return Tool{Generator: "MinGW Makefiles", BuildCmd: []string{"mingw32-make"}}
		}
		if _, err := r.lookPath("ninja"); err == nil {
			return Tool{Generator: "Ninja", BuildCmd: []string{"ninja"}}
		}
		return Tool{Generator: "NMake Makefiles", BuildCmd: []string{"nmake"}}
	}

	if _, err := r.lookPath("ninja"); err == nil {
		return Tool{Generator: "Ninja", BuildCmd: []string{"ninja"}}
	}
	return Tool{BuildCmd: []string{"make", "-j" + strconv.Itoa(runtime.NumCPU())}}
}

// Configure runs the build-configuration tool.
func (r *runner) Configure(ctx context.Context, buildDir string) error {
	args := []string{"-DCMAKE_BUILD_TYPE=Debug"}
	if r.tool.Generator != "" {
		args = append(args, "-G", r.tool.Generator)
	}
	args = append(args, "..")

	return r.run(ctx, buildDir, "cmake", args...)
}

// Build runs the build driver.
func (r *runner) Build(ctx context.Context, buildDir string) error {
	return r.run(ctx, buildDir, r.tool.BuildCmd[0], r.tool.BuildCmd[1:]...)
}

func (r *runner) run(ctx context.Context, dir, name string, args ...string) error {
	r.logger.Info("running external tool", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.out
	cmd.Stderr = r.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", config.ErrExternalTool, name, err)
	}
	return nil
}
