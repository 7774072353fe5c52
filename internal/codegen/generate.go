package codegen

import (
	"fmt"

	"github.com/glucoseinc/typebox-codegen/internal/diagnostic"
	"github.com/glucoseinc/typebox-codegen/internal/dialect"
	"github.com/glucoseinc/typebox-codegen/internal/format"
	"github.com/glucoseinc/typebox-codegen/internal/schema"
	"github.com/glucoseinc/typebox-codegen/internal/typegen"
)

// preamble is the fixed import line heading every generated file.
const preamble = "import * as v from 'valibot'"

// Options configures a generation run.
type Options struct {
	// Version selects the constraint-composition grammar. The zero value
	// selects the current pipeline grammar.
	Version dialect.Version

	// ExactOptional selects v.exactOptional over v.optional for optional
	// object properties.
	ExactOptional bool

	// RecursiveNames lists schema names known to participate in
	// self-reference. Membership is decided by an external analysis; it
	// switches those units to the lazy-evaluation output shape.
	RecursiveNames []string

	// TypeDecl produces the type-only declaration used for recursive units.
	// Defaults to typegen.Decl.
	TypeDecl func(name string, n *schema.Node) string

	// Formatter receives the full output buffer before it is returned.
	// Defaults to format.Normalizer.
	Formatter format.Formatter

	// Diags receives non-fatal diagnostics. May be nil.
	Diags *diagnostic.Collector
}

// Generator compiles schema models to Valibot source. All bookkeeping state
// is run-scoped and reset unconditionally at the start of every Generate
// call, so successive calls are independent. A Generator is not safe for
// concurrent use; callers wanting parallel runs should create one Generator
// per goroutine.
type Generator struct {
	opts    Options
	dialect dialect.Dialect
	diags   *diagnostic.Collector

	// Run-scoped state.
	refs       *schema.Registry // reference table: name → node
	emitted    map[string]bool  // emission memo: names already declared
	recursive  map[string]bool  // names requiring lazy self-reference
	generating map[string]bool  // names whose body is mid-expansion
	current    string           // name of the unit being generated
}

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.TypeDecl == nil {
		opts.TypeDecl = func(name string, n *schema.Node) string {
			return typegen.Decl(name, n)
		}
	}
	if opts.Formatter == nil {
		opts.Formatter = format.Normalizer{}
	}
	d := dialect.Get(opts.Version)
	if opts.Version != "" && opts.Version != d.Version() {
		opts.Diags.Warnf(diagnostic.CategoryConfigInvalid, "",
			"unknown dialect version %q, falling back to version %q", opts.Version, d.Version())
	}
	return &Generator{
		opts:    opts,
		dialect: d,
		diags:   opts.Diags,
	}
}

// Generate compiles the whole model: a fixed import preamble followed by one
// unit per well-formed top-level schema, in model order, joined by blank
// lines and passed through the configured formatter. Malformed model entries
// are skipped, unsupported constructs degrade to permissive sentinels, and
// the only error source is the formatter.
func Generate(model schema.Model, opts Options) (string, error) {
	return New(opts).Generate(model)
}

// Generate runs one generation pass. See the package-level Generate.
func (g *Generator) Generate(model schema.Model) (string, error) {
	g.reset()

	e := NewEmitter()
	e.Line("%s", preamble)
	for _, n := range model {
		if !n.IsSchema() {
			g.diags.Infof(diagnostic.CategoryModelSkipped, "",
				"skipping malformed model entry")
			continue
		}
		e.Blank()
		e.Raw(g.generateUnit(model, n))
		e.Blank()
	}
	return g.opts.Formatter.Format(e.String())
}

// reset clears all run-scoped state so the run is independent of any prior
// run against the same Generator.
func (g *Generator) reset() {
	g.refs = schema.NewRegistry()
	g.emitted = make(map[string]bool)
	g.generating = make(map[string]bool)
	g.recursive = make(map[string]bool)
	g.current = ""
	for _, name := range g.opts.RecursiveNames {
		g.recursive[name] = true
	}
}

// generateUnit emits the declarations for one named top-level schema: a type
// alias and a validator value. The reference table is rebuilt from the
// entire model first so forward and mutual references resolve regardless of
// declaration order.
func (g *Generator) generateUnit(model schema.Model, n *schema.Node) string {
	g.refs = schema.BuildRegistry(model)
	if n.Name == "" {
		// Only named nodes can become top-level declarations.
		g.diags.Warnf(diagnostic.CategoryModelSkipped, "",
			"anonymous top-level schema cannot be declared, emitting sentinel")
		return Unsupported
	}
	g.current = n.Name

	body := g.visit(n)

	var unit string
	if g.recursive[n.Name] {
		// Self-referential unit: a structural type declaration plus a
		// deferred value so in-body references to the name resolve when the
		// lazy thunk runs, not at declaration time.
		unit = fmt.Sprintf("%s\nexport const %s = v.lazy(() => %s)",
			g.opts.TypeDecl(n.Name, n), n.Name, body)
	} else {
		unit = fmt.Sprintf("export type %s = v.%s<typeof %s>\nexport const %s = %s",
			n.Name, g.dialect.OutputKeyword(), n.Name, n.Name, body)
	}

	g.emitted[n.Name] = true
	return unit
}

// Diagnostics returns the diagnostics collected so far, if a collector was
// configured.
func (g *Generator) Diagnostics() []diagnostic.Diagnostic {
	return g.diags.Diagnostics()
}
