package catalog

import (
	"reflect"
	"testing"
)

func TestCatalogOrdering(t *testing.T) {
	cat := New()

	t.Run("features_keep_declaration_order", func(t *testing.T) {
		want := []string{"spi", "i2c", "dma", "pio", "interp", "timer", "watchdog", "clocks"}
		var got []string
		for _, d := range cat.Features() {
			got = append(got, d.Key)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("feature order = %v, want %v", got, want)
		}
	})

	t.Run("example_keys_keep_declaration_order", func(t *testing.T) {
		want := []string{"uart", "gpio", "div"}
		if got := cat.ExampleKeys(); !reflect.DeepEqual(got, want) {
			t.Errorf("example keys = %v, want %v", got, want)
		}
	})

	t.Run("order_stable_across_instances", func(t *testing.T) {
		other := New()
		if !reflect.DeepEqual(cat.Features(), other.Features()) {
			t.Error("two catalogs disagree on feature order")
		}
		if !reflect.DeepEqual(cat.Wireless(), other.Wireless()) {
			t.Error("two catalogs disagree on wireless order")
		}
	})
}

func TestCatalogLookup(t *testing.T) {
	cat := New()

	t.Run("peripheral_feature", func(t *testing.T) {
		d, ok := cat.Lookup("spi")
		if !ok {
			t.Fatal("Lookup(spi) not found")
		}
		if d.LibraryName != "hardware_spi" {
			t.Errorf("spi library = %q, want %q", d.LibraryName, "hardware_spi")
		}
		if d.HeaderPath != "hardware/spi.h" {
			t.Errorf("spi header = %q, want %q", d.HeaderPath, "hardware/spi.h")
		}
	})

	t.Run("stdlib_example", func(t *testing.T) {
		d, ok := cat.Lookup("uart")
		if !ok {
			t.Fatal("Lookup(uart) not found")
		}
		if d.LibraryName != "hardware_uart" {
			t.Errorf("uart library = %q, want %q", d.LibraryName, "hardware_uart")
		}
	})

	t.Run("wireless_option", func(t *testing.T) {
		d, ok := cat.Lookup("picow_poll")
		if !ok {
			t.Fatal("Lookup(picow_poll) not found")
		}
		if d.LibraryName != "pico_cyw43_arch_lwip_poll" {
			t.Errorf("picow_poll library = %q", d.LibraryName)
		}
		if d.AncillaryFile != "lwipopts.h" {
			t.Errorf("picow_poll ancillary file = %q, want lwipopts.h", d.AncillaryFile)
		}
	})

	t.Run("none_option_contributes_nothing", func(t *testing.T) {
		d, ok := cat.Lookup("picow_none")
		if !ok {
			t.Fatal("Lookup(picow_none) not found")
		}
		if d.HeaderPath != "" || d.LibraryName != "" || d.AncillaryFile != "" {
			t.Errorf("picow_none should be empty, got %+v", d)
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		if _, ok := cat.Lookup("quantum_entangler"); ok {
			t.Error("Lookup of unknown key reported found")
		}
	})
}

func TestCatalogFragments(t *testing.T) {
	cat := New()

	t.Run("uart_fragment", func(t *testing.T) {
		frag, ok := cat.Fragment("uart")
		if !ok {
			t.Fatal("Fragment(uart) not found")
		}
		if len(frag.DefineLines) == 0 || len(frag.InitLines) == 0 {
			t.Errorf("uart fragment missing lines: %+v", frag)
		}
	})

	t.Run("interp_has_no_defines", func(t *testing.T) {
		frag, ok := cat.Fragment("interp")
		if !ok {
			t.Fatal("Fragment(interp) not found")
		}
		if len(frag.DefineLines) != 0 {
			t.Errorf("interp defines = %v, want none", frag.DefineLines)
		}
	})

	t.Run("wireless_has_no_fragment", func(t *testing.T) {
		if _, ok := cat.Fragment("picow_led"); ok {
			t.Error("wireless option unexpectedly has a code fragment")
		}
	})

	t.Run("dma_has_no_fragment", func(t *testing.T) {
		if _, ok := cat.Fragment("dma"); ok {
			t.Error("dma unexpectedly has a code fragment")
		}
	})
}

func TestEffectiveFeatures(t *testing.T) {
	cat := New()

	t.Run("examples_prepended", func(t *testing.T) {
		got := cat.EffectiveFeatures([]string{"spi", "i2c"}, true)
		want := []string{"uart", "gpio", "div", "spi", "i2c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("EffectiveFeatures = %v, want %v", got, want)
		}
	})

	t.Run("selection_order_preserved", func(t *testing.T) {
		got := cat.EffectiveFeatures([]string{"watchdog", "spi"}, false)
		want := []string{"watchdog", "spi"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("EffectiveFeatures = %v, want %v", got, want)
		}
	})

	t.Run("unknown_keys_pass_through", func(t *testing.T) {
		got := cat.EffectiveFeatures([]string{"bogus"}, false)
		want := []string{"bogus"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("EffectiveFeatures = %v, want %v", got, want)
		}
	})

	t.Run("empty_selection_without_examples", func(t *testing.T) {
		if got := cat.EffectiveFeatures(nil, false); len(got) != 0 {
			t.Errorf("EffectiveFeatures = %v, want empty", got)
		}
	})
}

func TestClampDebugger(t *testing.T) {
	cat := New()

	cases := []struct {
		name  string
		index int
		want  int
	}{
		{"in_range_zero", 0, 0},
		{"in_range_one", 1, 1},
		{"negative", -1, 0},
		{"too_large", 99, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cat.ClampDebugger(tc.index); got != tc.want {
				t.Errorf("ClampDebugger(%d) = %d, want %d", tc.index, got, tc.want)
			}
		})
	}
}

func TestDebuggers(t *testing.T) {
	cat := New()
	dbg := cat.Debuggers()
	if len(dbg) != 2 {
		t.Fatalf("debugger count = %d, want 2", len(dbg))
	}
	if dbg[0].ConfigFile != "cmsis-dap.cfg" {
		t.Errorf("default debugger config = %q, want cmsis-dap.cfg", dbg[0].ConfigFile)
	}
	if dbg[1].ConfigFile != "raspberrypi-swd.cfg" {
		t.Errorf("second debugger config = %q, want raspberrypi-swd.cfg", dbg[1].ConfigFile)
	}
}
