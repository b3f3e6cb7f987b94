package generator

import (
	"strings"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
)

// initIndent is the indentation applied to initialiser lines inside main().
const initIndent = "    "

// SourceFileName returns the generated main file name for a project.
func SourceFileName(projectName string, lang config.Language) string {
	return projectName + lang.SourceExt()
}

// RenderMainSource produces the main source file for the effective feature
// list. Includes, define blocks and initialiser blocks are all emitted in
// list order; a key unknown to the catalog contributes nothing. The content
// is valid under both C and C++ rules, so the language mode only decides the
// file extension.
func RenderMainSource(cat *catalog.Catalog, features []string) string {
	var b strings.Builder

	b.WriteString("#include <stdio.h>\n")
	b.WriteString("#include \"pico/stdlib.h\"\n")

	if len(features) > 0 {
		for _, key := range features {
			d, ok := cat.Lookup(key)
			if !ok || d.HeaderPath == "" {
				continue
			}
			b.WriteString("#include \"" + d.HeaderPath + "\"\n")
		}

		b.WriteString("\n")

		for _, key := range features {
			frag, ok := cat.Fragment(key)
			if !ok {
				continue
			}
			for _, line := range frag.DefineLines {
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString("int main()\n")
	b.WriteString("{\n")
	b.WriteString("    stdio_init_all();\n\n")

	// A blank line follows every feature's block, fragment or not, so the
	// spacing between peripheral setup blocks is uniform.
	for _, key := range features {
		if frag, ok := cat.Fragment(key); ok {
			for _, line := range frag.InitLines {
				b.WriteString(initIndent)
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("    puts(\"Hello, world!\");\n\n")
	b.WriteString("    return 0;\n")
	b.WriteString("}\n")

	return b.String()
}
