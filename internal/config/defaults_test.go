package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("missing_file_yields_zero_defaults", func(t *testing.T) {
		d, err := LoadDefaults(filepath.Join(t.TempDir(), "picogen.yaml"))
		if err != nil {
			t.Fatalf("LoadDefaults error: %v", err)
		}
		if d != (Defaults{}) {
			t.Errorf("defaults = %+v, want zero value", d)
		}
	})

	t.Run("parses_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "picogen.yaml")
		content := "board: pico_w\nconsole_uart: false\nconsole_usb: true\ndebugger: 1\ncompiler_path: /opt/gcc/bin/arm-none-eabi-gcc\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		d, err := LoadDefaults(path)
		if err != nil {
			t.Fatalf("LoadDefaults error: %v", err)
		}
		if d.Board != "pico_w" {
			t.Errorf("board = %q, want pico_w", d.Board)
		}
		if d.ConsoleUART == nil || *d.ConsoleUART {
			t.Error("console_uart not parsed as false")
		}
		if d.ConsoleUSB == nil || !*d.ConsoleUSB {
			t.Error("console_usb not parsed as true")
		}
		if d.Debugger == nil || *d.Debugger != 1 {
			t.Error("debugger not parsed as 1")
		}
		if d.CompilerPath != "/opt/gcc/bin/arm-none-eabi-gcc" {
			t.Errorf("compiler_path = %q", d.CompilerPath)
		}
	})

	t.Run("malformed_yaml_is_an_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "picogen.yaml")
		if err := os.WriteFile(path, []byte("board: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDefaults(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestDefaultsApply(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }
	intPtr := func(v int) *int { return &v }

	t.Run("set_fields_override", func(t *testing.T) {
		cfg := &Config{BoardType: "pico", ConsoleUART: true}
		d := Defaults{
			Board:        "pico_w",
			ConsoleUART:  boolPtr(false),
			ConsoleUSB:   boolPtr(true),
			Debugger:     intPtr(1),
			CompilerPath: "/custom/gcc",
		}
		d.Apply(cfg)

		if cfg.BoardType != "pico_w" {
			t.Errorf("board = %q, want pico_w", cfg.BoardType)
		}
		if cfg.ConsoleUART {
			t.Error("console_uart default not applied")
		}
		if !cfg.ConsoleUSB {
			t.Error("console_usb default not applied")
		}
		if cfg.Debugger != 1 {
			t.Errorf("debugger = %d, want 1", cfg.Debugger)
		}
		if cfg.CompilerPath != "/custom/gcc" {
			t.Errorf("compiler path = %q", cfg.CompilerPath)
		}
	})

	t.Run("zero_defaults_leave_config_alone", func(t *testing.T) {
		cfg := &Config{BoardType: "pico", ConsoleUART: true, CompilerPath: "gcc"}
		Defaults{}.Apply(cfg)

		if cfg.BoardType != "pico" || !cfg.ConsoleUART || cfg.CompilerPath != "gcc" {
			t.Errorf("zero defaults modified config: %+v", cfg)
		}
	})
}
