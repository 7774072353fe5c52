package codegen

import (
	"fmt"
	"reflect"

	"github.com/glucoseinc/typebox-codegen/internal/diagnostic"
	"github.com/glucoseinc/typebox-codegen/internal/schema"
)

// probeInput is the fixed sample value fed to a codec's decode function to
// infer its source shape. A single sample cannot distinguish decode
// functions that branch on input shape; the probe is a heuristic, not a
// proof.
const probeInput = 1

// visitTransform compiles a codec node into a three-part pipeline: the
// pre-decode source schema, a transform stage embedding the encode
// function's source text verbatim, and the post-decode target's refinement
// calls. The target's own base call is dropped; if the target compiled to a
// composed pipeline its refinement list is spliced into the outer pipeline
// instead of nesting.
func (g *Generator) visitTransform(n *schema.Node) string {
	source := n.Source
	if source == nil {
		source = g.probeDecode(n)
	}

	sourceExpr := Unsupported
	if source != nil {
		sourceExpr = g.visit(source)
	}
	targetExpr := g.visit(n.Wrapped)

	var refinements []string
	if _, refs, ok := g.dialect.SplitPipeline(targetExpr); ok {
		refinements = refs
	}
	return g.dialect.Transform(sourceExpr, n.Encode, refinements)
}

// probeDecode invokes the decode function with the fixed probe input and
// classifies the runtime type of the result. Any panic is absorbed: the
// failure is reported as a diagnostic and the source shape degrades to the
// unsupported sentinel (nil).
func (g *Generator) probeDecode(n *schema.Node) (source *schema.Node) {
	if n.Decode == nil {
		g.diags.WarnWithHint(diagnostic.CategoryCodecProbe, g.current,
			fmt.Sprintf("%s has no runtime decode function, source shape unknown", describeCodec(n)),
			"supply an explicit source schema when the model is built from serialized form")
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			g.diags.Warnf(diagnostic.CategoryCodecProbe, g.current,
				"decode probe failed: %v (decode: %s)", r, n.DecodeSource)
			source = nil
		}
	}()
	out := n.Decode(probeInput)
	switch reflect.ValueOf(out).Kind() {
	case reflect.String:
		return &schema.Node{Kind: schema.KindString}
	case reflect.Slice, reflect.Array:
		return &schema.Node{Kind: schema.KindArray, Items: &schema.Node{Kind: schema.KindAny}}
	case reflect.Map, reflect.Struct:
		return &schema.Node{Kind: schema.KindObject}
	default:
		return &schema.Node{Kind: schema.KindAny}
	}
}

// describeCodec is a debugging aid for diagnostics and dump output.
func describeCodec(n *schema.Node) string {
	target := "?"
	if n.Wrapped != nil {
		target = string(n.Wrapped.Kind)
	}
	return fmt.Sprintf("Transform(decode: %s, target: %s)", n.DecodeSource, target)
}
