package generator

import (
	"strings"
	"testing"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
)

func TestSourceFileName(t *testing.T) {
	if got := SourceFileName("blink", config.LangC); got != "blink.c" {
		t.Errorf("SourceFileName C = %q, want blink.c", got)
	}
	if got := SourceFileName("blink", config.LangCPP); got != "blink.cpp" {
		t.Errorf("SourceFileName C++ = %q, want blink.cpp", got)
	}
}

func TestRenderMainSourceEmptySelection(t *testing.T) {
	cat := catalog.New()
	src := RenderMainSource(cat, nil)

	for _, want := range []string{
		"#include <stdio.h>\n",
		"#include \"pico/stdlib.h\"\n",
		"int main()\n{\n    stdio_init_all();\n",
		"    puts(\"Hello, world!\");\n",
		"    return 0;\n}\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("source missing %q:\n%s", want, src)
		}
	}
	if !strings.HasSuffix(src, "}\n") {
		t.Errorf("source does not end with closing brace:\n%s", src)
	}
}

func TestRenderMainSourceUART(t *testing.T) {
	cat := catalog.New()
	src := RenderMainSource(cat, []string{"uart"})

	if !strings.Contains(src, "#include \"hardware/uart.h\"\n") {
		t.Error("uart header include missing")
	}
	if !strings.Contains(src, "#define UART_ID uart1\n") {
		t.Error("UART_ID define missing")
	}
	if !strings.Contains(src, "#define BAUD_RATE 9600\n") {
		t.Error("BAUD_RATE define missing")
	}
	// Initialiser calls sit inside main() at one indent level.
	if !strings.Contains(src, "    uart_init(UART_ID, BAUD_RATE);\n") {
		t.Error("indented uart_init call missing")
	}
	if !strings.Contains(src, "    gpio_set_function(UART_TX_PIN, GPIO_FUNC_UART);\n") {
		t.Error("indented gpio_set_function call missing")
	}
	// Defines belong above main, initialisers inside it.
	mainAt := strings.Index(src, "int main()")
	if defAt := strings.Index(src, "#define UART_ID"); defAt == -1 || defAt > mainAt {
		t.Error("defines not emitted before main()")
	}
	if initAt := strings.Index(src, "uart_init("); initAt < mainAt {
		t.Error("initialiser not emitted inside main()")
	}
}

func TestRenderMainSourceOrder(t *testing.T) {
	cat := catalog.New()
	src := RenderMainSource(cat, []string{"spi", "i2c"})

	spiInc := strings.Index(src, "#include \"hardware/spi.h\"")
	i2cInc := strings.Index(src, "#include \"hardware/i2c.h\"")
	if spiInc == -1 || i2cInc == -1 || spiInc > i2cInc {
		t.Errorf("include order wrong: spi at %d, i2c at %d", spiInc, i2cInc)
	}

	spiInit := strings.Index(src, "spi_init(SPI_PORT")
	i2cInit := strings.Index(src, "i2c_init(I2C_PORT")
	if spiInit == -1 || i2cInit == -1 || spiInit > i2cInit {
		t.Errorf("init order wrong: spi at %d, i2c at %d", spiInit, i2cInit)
	}

	// Reversing the selection reverses the emitted blocks.
	rev := RenderMainSource(cat, []string{"i2c", "spi"})
	if strings.Index(rev, "i2c_init(") > strings.Index(rev, "spi_init(") {
		t.Error("reversed selection did not reverse init order")
	}
}

func TestRenderMainSourceUnknownKey(t *testing.T) {
	cat := catalog.New()
	with := RenderMainSource(cat, []string{"spi", "warp_drive"})
	without := RenderMainSource(cat, []string{"spi"})

	// The unknown key has no include, define or init text; only the uniform
	// blank line per selected entry differs.
	if strings.Contains(with, "warp_drive") {
		t.Error("unknown key leaked into generated source")
	}
	if strings.Count(with, "#include") != strings.Count(without, "#include") {
		t.Error("unknown key changed the include set")
	}
}

func TestRenderMainSourceDeterministic(t *testing.T) {
	cat := catalog.New()
	features := []string{"uart", "gpio", "div", "spi", "i2c", "watchdog", "timer", "interp"}

	first := RenderMainSource(cat, features)
	for i := 0; i < 10; i++ {
		if got := RenderMainSource(catalog.New(), features); got != first {
			t.Fatalf("run %d produced different bytes", i)
		}
	}
}

func TestRenderMainSourceWatchdog(t *testing.T) {
	cat := catalog.New()
	src := RenderMainSource(cat, []string{"watchdog"})

	if !strings.Contains(src, "    watchdog_enable(100, 1);\n") {
		t.Error("watchdog_enable call missing")
	}
	if !strings.Contains(src, "    watchdog_update();\n") {
		t.Error("watchdog_update call missing")
	}
}
