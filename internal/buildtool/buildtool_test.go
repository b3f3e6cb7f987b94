package buildtool

import (
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/picotools/picogen/internal/config"
)

// fakeLookPath resolves only the listed tool names.
func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestDetect(t *testing.T) {
	newRunner := func(available ...string) *runner {
		r := &runner{
			out:      io.Discard,
			logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			lookPath: fakeLookPath(available...),
		}
		r.tool = r.detect()
		return r
	}

	if runtime.GOOS == "windows" {
		t.Run("mingw_preferred", func(t *testing.T) {
			tool := newRunner("mingw32-make", "ninja").tool
			if tool.Generator != "MinGW Makefiles" {
				t.Errorf("generator = %q, want MinGW Makefiles", tool.Generator)
			}
			if tool.BuildCmd[0] != "mingw32-make" {
				t.Errorf("build cmd = %v", tool.BuildCmd)
			}
		})
		t.Run("ninja_second", func(t *testing.T) {
			tool := newRunner("ninja").tool
			if tool.Generator != "Ninja" {
				t.Errorf("generator = %q, want Ninja", tool.Generator)
			}
		})
		t.Run("nmake_fallback", func(t *testing.T) {
			tool := newRunner().tool
			if tool.Generator != "NMake Makefiles" || tool.BuildCmd[0] != "nmake" {
				t.Errorf("tool = %+v", tool)
			}
		})
		return
	}

	t.Run("ninja_preferred", func(t *testing.T) {
		tool := newRunner("ninja", "make").tool
		if tool.Generator != "Ninja" {
			t.Errorf("generator = %q, want Ninja", tool.Generator)
		}
		if tool.BuildCmd[0] != "ninja" {
			t.Errorf("build cmd = %v", tool.BuildCmd)
		}
	})

	t.Run("make_fallback", func(t *testing.T) {
		tool := newRunner("make").tool
		if tool.Generator != "" {
			t.Errorf("generator = %q, want cmake default", tool.Generator)
		}
		if tool.BuildCmd[0] != "make" {
			t.Errorf("build cmd = %v", tool.BuildCmd)
		}
		if len(tool.BuildCmd) != 2 || !strings.HasPrefix(tool.BuildCmd[1], "-j") {
			t.Errorf("make parallelism flag missing: %v", tool.BuildCmd)
		}
	})
}

func TestNewDefaults(t *testing.T) {
	// nil writer and logger must not panic later.
	r := New(nil, nil).(*runner)
	if r.out == nil || r.logger == nil {
		t.Error("nil out or logger not defaulted")
	}
	if len(r.tool.BuildCmd) == 0 {
		t.Error("no build driver detected")
	}
}

func TestRunFailureWrapsExternalTool(t *testing.T) {
	r := &runner{
		out:      io.Discard,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		lookPath: exec.LookPath,
	}

	err := r.run(t.Context(), t.TempDir(), "picogen-no-such-binary")
	if !errors.Is(err, config.ErrExternalTool) {
		t.Errorf("error = %v, want ErrExternalTool", err)
	}
}
