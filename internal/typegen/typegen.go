// Package typegen emits plain TypeScript type declarations from schema
// nodes. The code generator uses these for recursive schemas, where the
// validator's inferred output cannot name itself and a structural type
// declaration is required instead.
package typegen

import (
	"fmt"
	"strings"

	"github.com/glucoseinc/typebox-codegen/internal/schema"
)

// numberIndexPattern matches keys that are non-negative integer indices.
const numberIndexPattern = `^(0|[1-9][0-9]*)$`

// Decl returns a type-only declaration for the named node, e.g.
// "export type Node = { id: string; children: Node[] }".
func Decl(name string, n *schema.Node) string {
	return fmt.Sprintf("export type %s = %s", name, expr(n, name, true))
}

// expr renders the type expression for a node. Named nested nodes are
// referenced by name, which is what makes self-referential declarations
// legal at the type level.
func expr(n *schema.Node, self string, root bool) string {
	if n == nil {
		return "unknown"
	}
	if !root && n.Name != "" {
		return n.Name
	}
	switch n.Kind {
	case schema.KindAny:
		return "any"
	case schema.KindUnknown:
		return "unknown"
	case schema.KindNever:
		return "never"
	case schema.KindNull:
		return "null"
	case schema.KindUndefined:
		return "undefined"
	case schema.KindVoid:
		return "void"
	case schema.KindBoolean:
		return "boolean"
	case schema.KindBigInt:
		return "bigint"
	case schema.KindDate:
		return "Date"
	case schema.KindString, schema.KindTemplateLiteral:
		return "string"
	case schema.KindNumber, schema.KindInteger:
		return "number"
	case schema.KindByteArray:
		return "Uint8Array"
	case schema.KindLiteral:
		return literal(n.Value)
	case schema.KindArray:
		item := expr(n.Items, self, false)
		if strings.ContainsAny(item, "|&") {
			return "(" + item + ")[]"
		}
		return item + "[]"
	case schema.KindTuple:
		return "[" + joinMembers(n.Members, self, ", ") + "]"
	case schema.KindUnion:
		return joinMembers(n.Members, self, " | ")
	case schema.KindIntersect:
		return joinMembers(n.Members, self, " & ")
	case schema.KindObject:
		if len(n.Properties) == 0 {
			return "{}"
		}
		parts := make([]string, len(n.Properties))
		for i, p := range n.Properties {
			opt := ""
			if p.Optional {
				opt = "?"
			}
			parts[i] = fmt.Sprintf("%s%s: %s", p.Key, opt, expr(p.Type, self, false))
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	case schema.KindRecord:
		if len(n.Patterns) == 0 {
			return "Record<string, unknown>"
		}
		p := n.Patterns[0]
		key := "string"
		if p.Pattern == numberIndexPattern {
			key = "number"
		}
		return fmt.Sprintf("Record<%s, %s>", key, expr(p.Value, self, false))
	case schema.KindRef:
		if n.Target != "" {
			return n.Target
		}
		return "unknown"
	case schema.KindThis:
		if self != "" {
			return self
		}
		return "unknown"
	case schema.KindTransform:
		return expr(n.Wrapped, self, false)
	default:
		return "unknown"
	}
}

func joinMembers(members []*schema.Node, self, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = expr(m, self, false)
	}
	return strings.Join(parts, sep)
}

func literal(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}
