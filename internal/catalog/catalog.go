// Package catalog holds the static table of selectable project features:
// hardware peripheral libraries, standard-library example snippets, and
// wireless (Pico W) options, together with the code fragments and library
// names each one contributes to a generated project. The catalog is built
// once, is immutable afterwards, and iterates in declaration order so that
// generated output is byte-identical across runs.
package catalog

// FeatureDescriptor describes one selectable unit of functionality.
type FeatureDescriptor struct {
	Key           string // stable short identifier, unique within its partition
	DisplayName   string // human readable label for listings and the wizard
	HeaderPath    string // SDK header included by the generated source, may be empty
	LibraryName   string // CMake link target, may be empty
	AncillaryFile string // extra file copied verbatim into the project, usually empty
}

// CodeFragment is the paired defines/initialiser source text emitted into the
// generated main file for one feature key. Either block may be empty.
type CodeFragment struct {
	DefineLines []string
	InitLines   []string
}

// Debugger is one supported debug probe with its OpenOCD interface config.
type Debugger struct {
	Name       string
	ConfigFile string
}

// partition is an ordered set of descriptors with key lookup.
type partition struct {
	ordered []FeatureDescriptor
	index   map[string]int
}

func newPartition(descriptors []FeatureDescriptor) partition {
	p := partition{
		ordered: descriptors,
		index:   make(map[string]int, len(descriptors)),
	}
	for i, d := range descriptors {
		p.index[d.Key] = i
	}
	return p
}

func (p partition) lookup(key string) (FeatureDescriptor, bool) {
	i, ok := p.index[key]
	if !ok {
		return FeatureDescriptor{}, false
	}
	return p.ordered[i], true
}

func (p partition) keys() []string {
	keys := make([]string, len(p.ordered))
	for i, d := range p.ordered {
		keys[i] = d.Key
	}
	return keys
}

// Catalog is the full immutable feature catalog. Construct with New and pass
// by reference into the generation engine; there is no package-level state.
type Catalog struct {
	features  partition
	examples  partition
	wireless  partition
	fragments map[string]CodeFragment
	debuggers []Debugger
}

// New builds the built-in catalog.
func New() *Catalog {
	return &Catalog{
		features:  newPartition(peripheralFeatures),
		examples:  newPartition(stdlibExamples),
		wireless:  newPartition(wirelessOptions),
		fragments: codeFragments,
		debuggers: debuggers,
	}
}

// Features returns the peripheral feature descriptors in catalog order.
func (c *Catalog) Features() []FeatureDescriptor {
	return append([]FeatureDescriptor(nil), c.features.ordered...)
}

// Examples returns the standard-library example descriptors in catalog order.
func (c *Catalog) Examples() []FeatureDescriptor {
	return append([]FeatureDescriptor(nil), c.examples.ordered...)
}

// Wireless returns the Pico W option descriptors in catalog order.
func (c *Catalog) Wireless() []FeatureDescriptor {
	return append([]FeatureDescriptor(nil), c.wireless.ordered...)
}

// ExampleKeys returns the stdlib example keys in catalog order.
func (c *Catalog) ExampleKeys() []string {
	return c.examples.keys()
}

// Lookup resolves a key against all three partitions, peripheral features
// first, then stdlib examples, then wireless options. An unknown key is not
// an error; it simply resolves to nothing and contributes nothing to any
// generated artifact.
func (c *Catalog) Lookup(key string) (FeatureDescriptor, bool) {
	if d, ok := c.features.lookup(key); ok {
		return d, true
	}
	if d, ok := c.examples.lookup(key); ok {
		return d, true
	}
	if d, ok := c.wireless.lookup(key); ok {
		return d, true
	}
	return FeatureDescriptor{}, false
}

// Fragment returns the code fragment for a key, if the key has one.
// Debugger and IDE options never have fragments.
func (c *Catalog) Fragment(key string) (CodeFragment, bool) {
	f, ok := c.fragments[key]
	return f, ok
}

// Debuggers returns the supported debug probes in fixed order.
func (c *Catalog) Debuggers() []Debugger {
	return append([]Debugger(nil), c.debuggers...)
}

// ClampDebugger maps an out-of-range debugger index to the default (0).
func (c *Catalog) ClampDebugger(index int) int {
	if index < 0 || index >= len(c.debuggers) {
		return 0
	}
	return index
}

// EffectiveFeatures merges the explicit selection with the stdlib example set
// to produce the ordered feature list used by every generator. Example keys
// are prepended so their includes, defines and initialisers appear first.
// Order is preserved exactly as given: later initialiser blocks may depend on
// GPIO function-select state configured by earlier ones, and the engine never
// reorders on the caller's behalf.
func (c *Catalog) EffectiveFeatures(selected []string, wantExamples bool) []string {
	var effective []string
	if wantExamples {
		effective = append(effective, c.examples.keys()...)
	}
	return append(effective, selected...)
}
