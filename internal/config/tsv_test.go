package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTSV = "name\tlocation\tdescription\ttype\tadvanced\tdefault\tdepends\tenumvalues\tmin\tmax\n" +
	"PICO_STDIO_ENABLE_CRLF_SUPPORT\tsrc/rp2_common/pico_stdio/include/pico/stdio.h\tEnable CRLF output conversion\tbool\tFalse\t1\t\t\t\t\n" +
	"PICO_QUEUE_MAX_LEVEL\tsrc/common/pico_util/include/pico/util/queue.h\tMaximum queue level\tint\tTrue\t\t\t\t1\t256\n" +
	"PICO_DEFAULT_BOOT_STAGE2\tsrc/rp2_common/boot_stage2/CMakeLists.txt\tBoot stage 2 variant\tenum\tTrue\tcompile_time_choice\t\tcompile_time_choice|boot2_generic_03h\t\t\n"

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pico_configs.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigItems(t *testing.T) {
	t.Run("parses_rows", func(t *testing.T) {
		items, err := LoadConfigItems(writeTSV(t, sampleTSV))
		if err != nil {
			t.Fatalf("LoadConfigItems error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("item count = %d, want 3", len(items))
		}

		first := items[0]
		if first.Name != "PICO_STDIO_ENABLE_CRLF_SUPPORT" {
			t.Errorf("name = %q", first.Name)
		}
		if first.Kind() != "bool" {
			t.Errorf("kind = %q, want bool", first.Kind())
		}
		if first.Default != "1" {
			t.Errorf("default = %q, want 1", first.Default)
		}
		if first.Description != "Enable CRLF output conversion" {
			t.Errorf("description = %q", first.Description)
		}

		second := items[1]
		if second.Min != "1" || second.Max != "256" {
			t.Errorf("range = %q..%q, want 1..256", second.Min, second.Max)
		}

		third := items[2]
		if third.EnumValues != "compile_time_choice|boot2_generic_03h" {
			t.Errorf("enum values = %q", third.EnumValues)
		}
	})

	t.Run("missing_file_is_not_an_error", func(t *testing.T) {
		items, err := LoadConfigItems(filepath.Join(t.TempDir(), "nope.tsv"))
		if err != nil {
			t.Fatalf("LoadConfigItems error: %v", err)
		}
		if items != nil {
			t.Errorf("items = %v, want nil", items)
		}
	})

	t.Run("empty_file_yields_no_items", func(t *testing.T) {
		items, err := LoadConfigItems(writeTSV(t, ""))
		if err != nil {
			t.Fatalf("LoadConfigItems error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("items = %v, want none", items)
		}
	})

	t.Run("short_rows_tolerated", func(t *testing.T) {
		tsv := "name\ttype\tdescription\nPICO_FLASH_SIZE_BYTES\n"
		items, err := LoadConfigItems(writeTSV(t, tsv))
		if err != nil {
			t.Fatalf("LoadConfigItems error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "PICO_FLASH_SIZE_BYTES" {
			t.Fatalf("items = %+v", items)
		}
		if items[0].Kind() != "int" {
			t.Errorf("kind = %q, want int default", items[0].Kind())
		}
	})
}

func TestConfigItemKind(t *testing.T) {
	if got := (ConfigItem{Type: "enum"}).Kind(); got != "enum" {
		t.Errorf("kind = %q, want enum", got)
	}
	if got := (ConfigItem{}).Kind(); got != "int" {
		t.Errorf("kind = %q, want int", got)
	}
}
