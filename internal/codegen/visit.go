package codegen

import (
	"fmt"
	"strings"

	"github.com/glucoseinc/typebox-codegen/internal/diagnostic"
	"github.com/glucoseinc/typebox-codegen/internal/schema"
)

// Unsupported is the sentinel expression emitted for any node this compiler
// cannot faithfully represent. It accepts anything, so degraded output stays
// permissive instead of rejecting valid values.
const Unsupported = "v.any(/* unsupported */)"

// numberIndexPattern matches record keys that are non-negative integer
// indices. A record keyed by it is array-like and maps to a numeric-keyed
// container.
const numberIndexPattern = `^(0|[1-9][0-9]*)$`

// visit compiles one schema node into a validator-construction expression.
// It is total over the kind enumeration: every kind yields some text, with
// unrepresentable kinds degrading to the Unsupported sentinel. The single
// exception is a Record node without pattern properties, which is a
// malformed IR node and panics.
func (g *Generator) visit(n *schema.Node) string {
	if n == nil {
		return Unsupported
	}
	// Already-declared names resolve to the bare name token; names whose
	// body is mid-expansion do too, which is what breaks cycles.
	if n.Name != "" {
		if g.emitted[n.Name] || g.generating[n.Name] {
			return n.Name
		}
		g.generating[n.Name] = true
		defer delete(g.generating, n.Name)
	}
	// Transform is checked before generic dispatch: its wrapped target
	// could otherwise shadow the codec handling.
	if n.Kind == schema.KindTransform {
		return g.visitTransform(n)
	}
	switch n.Kind {
	case schema.KindAny:
		return "v.any()"
	case schema.KindUnknown:
		return "v.unknown()"
	case schema.KindNever:
		return "v.never()"
	case schema.KindNull:
		return "v.null_()"
	case schema.KindUndefined:
		return "v.undefined_()"
	case schema.KindVoid:
		return "v.void_()"
	case schema.KindBoolean:
		return "v.boolean()"
	case schema.KindBigInt:
		return "v.bigint()"
	case schema.KindDate:
		return "v.date()"
	case schema.KindLiteral:
		return fmt.Sprintf("v.literal(%s)", jsLiteral(n.Value))
	case schema.KindString:
		return g.stringRule(n)
	case schema.KindTemplateLiteral:
		return g.stringRule(&schema.Node{Kind: schema.KindString, Pattern: n.Pattern})
	case schema.KindNumber:
		return g.numberRule(n, false)
	case schema.KindInteger:
		return g.numberRule(n, true)
	case schema.KindArray:
		return g.arrayRule(n)
	case schema.KindTuple:
		return fmt.Sprintf("v.tuple([%s])", g.visitMembers(n.Members))
	case schema.KindUnion:
		return fmt.Sprintf("v.union([%s])", g.visitMembers(n.Members))
	case schema.KindIntersect:
		return fmt.Sprintf("v.intersect([%s])", g.visitMembers(n.Members))
	case schema.KindObject:
		return g.objectRule(n)
	case schema.KindRecord:
		return g.recordRule(n)
	case schema.KindRef:
		return g.refRule(n)
	case schema.KindConstructor, schema.KindFunction, schema.KindPromise,
		schema.KindByteArray, schema.KindThis:
		// No faithful equivalent in the target grammar.
		g.diags.Warnf(diagnostic.CategoryTypeUnsupported, g.current,
			"kind %s has no equivalent validator, emitting permissive sentinel", n.Kind)
		return Unsupported
	default:
		g.diags.Warnf(diagnostic.CategoryTypeUnsupported, g.current,
			"unknown kind %q, emitting permissive sentinel", n.Kind)
		return Unsupported
	}
}

// stringRule emits the base string constructor plus refinements in the
// declared order: length checks first, then pattern, then format. This
// order is a visible contract of the output.
func (g *Generator) stringRule(n *schema.Node) string {
	var refinements []string
	if n.MaxLength != nil {
		refinements = append(refinements, fmt.Sprintf("v.maxLength(%d)", *n.MaxLength))
	}
	if n.MinLength != nil {
		refinements = append(refinements, fmt.Sprintf("v.minLength(%d)", *n.MinLength))
	}
	if n.Pattern != "" {
		refinements = append(refinements, fmt.Sprintf("v.regex(/%s/)", escapeForRegexLiteral(n.Pattern)))
	}
	if ref, ok := formatRefinements[n.Format]; ok {
		refinements = append(refinements, ref)
	}
	return g.dialect.Compose("v.string", "", refinements)
}

// numberRule emits the base number constructor plus refinements in the
// declared order: integer check, lower bound, upper bound, multipleOf.
// Exclusive bounds translate to inclusive ones one unit in; this assumes an
// integer domain.
func (g *Generator) numberRule(n *schema.Node, integer bool) string {
	var refinements []string
	if integer {
		refinements = append(refinements, "v.integer()")
	}
	switch {
	case n.Minimum != nil:
		refinements = append(refinements, fmt.Sprintf("v.minValue(%s)", formatNumber(*n.Minimum)))
	case n.ExclusiveMinimum != nil:
		refinements = append(refinements, fmt.Sprintf("v.minValue(%s)", formatNumber(*n.ExclusiveMinimum+1)))
	}
	switch {
	case n.Maximum != nil:
		refinements = append(refinements, fmt.Sprintf("v.maxValue(%s)", formatNumber(*n.Maximum)))
	case n.ExclusiveMaximum != nil:
		refinements = append(refinements, fmt.Sprintf("v.maxValue(%s)", formatNumber(*n.ExclusiveMaximum-1)))
	}
	if n.MultipleOf != nil {
		refinements = append(refinements, fmt.Sprintf("v.multipleOf(%s)", formatNumber(*n.MultipleOf)))
	}
	return g.dialect.Compose("v.number", "", refinements)
}

func (g *Generator) arrayRule(n *schema.Node) string {
	var refinements []string
	if n.MinItems != nil {
		refinements = append(refinements, fmt.Sprintf("v.minLength(%d)", *n.MinItems))
	}
	if n.MaxItems != nil {
		refinements = append(refinements, fmt.Sprintf("v.maxLength(%d)", *n.MaxItems))
	}
	return g.dialect.Compose("v.array", g.visit(n.Items), refinements)
}

func (g *Generator) objectRule(n *schema.Node) string {
	if len(n.Properties) == 0 {
		return "v.object({})"
	}
	optional := "v.optional"
	if g.opts.ExactOptional {
		optional = "v.exactOptional"
	}
	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		expr := g.visit(p.Type)
		if p.Optional {
			expr = fmt.Sprintf("%s(%s)", optional, expr)
		}
		parts[i] = fmt.Sprintf("%s: %s", objectKey(p.Key), expr)
	}
	return fmt.Sprintf("v.object({ %s })", strings.Join(parts, ", "))
}

// recordRule distinguishes array-like records (numeric index keys) from
// general key-validated mappings. The key validator for the general form is
// derived by running the string rule over a synthetic schema carrying the
// key pattern.
func (g *Generator) recordRule(n *schema.Node) string {
	if len(n.Patterns) == 0 {
		// A record without pattern properties is structurally impossible in
		// a well-formed model; this is a defect in the IR builder.
		panic("codegen: record node has no pattern properties")
	}
	p := n.Patterns[0]
	value := g.visit(p.Value)
	if p.Pattern == numberIndexPattern {
		return fmt.Sprintf("v.record(v.number(), %s)", value)
	}
	key := g.stringRule(&schema.Node{Kind: schema.KindString, Pattern: p.Pattern})
	return fmt.Sprintf("v.record(%s, %s)", key, value)
}

func (g *Generator) refRule(n *schema.Node) string {
	target, ok := g.refs.Resolve(n.Target)
	if !ok {
		g.diags.Warnf(diagnostic.CategoryRefUnresolved, g.current,
			"reference %q does not resolve, emitting permissive sentinel", n.Target)
		return Unsupported
	}
	return g.visit(target)
}

func (g *Generator) visitMembers(members []*schema.Node) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = g.visit(m)
	}
	return strings.Join(parts, ", ")
}
