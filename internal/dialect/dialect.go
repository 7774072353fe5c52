// Package dialect describes the constraint-composition grammar of the target
// validation library. Two grammar eras exist: the legacy form that passes
// refinements as a trailing list argument to the base constructor, and the
// current form that wraps the base call and each refinement in a linear
// pipeline. All kind rules in the code generator are written against this
// interface and stay dialect-agnostic.
package dialect

import (
	"fmt"
	"strings"
)

// Version selects a grammar era.
type Version string

const (
	// V030 is the legacy trailing-argument grammar:
	// v.string([v.maxLength(5)]).
	V030 Version = "0.30"
	// V1 is the pipeline grammar: v.pipe(v.string(), v.maxLength(5)).
	// This is the default.
	V1 Version = "1"
)

// Dialect composes base validator calls with refinement calls into target
// source text.
type Dialect interface {
	// Version returns the grammar era tag.
	Version() Version

	// OutputKeyword names the generic type that infers a validator's
	// successful output (e.g. "InferOutput" in v.InferOutput<typeof X>).
	OutputKeyword() string

	// Compose combines a base constructor name (e.g. "v.string"), an
	// optional single parameter expression, and an ordered refinement list
	// into one expression.
	Compose(base, param string, refinements []string) string

	// Transform builds the three-part codec pipeline: source expression,
	// a transform stage embedding encodeFn verbatim, then the target's
	// refinement calls.
	Transform(source, encodeFn string, refinements []string) string

	// SplitPipeline decomposes an expression previously produced by Compose
	// into its base call and refinement list, flattening one level so a
	// composed target can be spliced into an outer pipeline. ok is false
	// when expr is not a composed expression of this grammar.
	SplitPipeline(expr string) (base string, refinements []string, ok bool)
}

// Get returns the dialect for a version tag. Unknown tags fall back to the
// current pipeline grammar.
func Get(v Version) Dialect {
	switch v {
	case V030:
		return legacyDialect{}
	default:
		return pipeDialect{}
	}
}

// pipeDialect implements the current pipeline grammar.
type pipeDialect struct{}

func (pipeDialect) Version() Version      { return V1 }
func (pipeDialect) OutputKeyword() string { return "InferOutput" }

func (pipeDialect) Compose(base, param string, refinements []string) string {
	call := fmt.Sprintf("%s(%s)", base, param)
	if len(refinements) == 0 {
		return call
	}
	return fmt.Sprintf("v.pipe(%s, %s)", call, strings.Join(refinements, ", "))
}

func (pipeDialect) Transform(source, encodeFn string, refinements []string) string {
	stages := append([]string{source, fmt.Sprintf("v.transform(%s)", encodeFn)}, refinements...)
	return fmt.Sprintf("v.pipe(%s)", strings.Join(stages, ", "))
}

func (pipeDialect) SplitPipeline(expr string) (string, []string, bool) {
	inner, ok := strings.CutPrefix(expr, "v.pipe(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return "", nil, false
	}
	inner = inner[:len(inner)-1]
	parts := splitArgs(inner)
	if len(parts) == 0 {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// legacyDialect implements the trailing-argument grammar.
type legacyDialect struct{}

func (legacyDialect) Version() Version      { return V030 }
func (legacyDialect) OutputKeyword() string { return "Output" }

func (legacyDialect) Compose(base, param string, refinements []string) string {
	args := []string{}
	if param != "" {
		args = append(args, param)
	}
	if len(refinements) > 0 {
		args = append(args, fmt.Sprintf("[%s]", strings.Join(refinements, ", ")))
	}
	return fmt.Sprintf("%s(%s)", base, strings.Join(args, ", "))
}

func (legacyDialect) Transform(source, encodeFn string, refinements []string) string {
	if len(refinements) == 0 {
		return fmt.Sprintf("v.transform(%s, %s)", source, encodeFn)
	}
	return fmt.Sprintf("v.transform(%s, %s, [%s])", source, encodeFn, strings.Join(refinements, ", "))
}

// bracketParamBases names constructors whose ordinary parameter is itself a
// bracketed member list. A sole bracketed argument on them is the parameter,
// never a refinement list.
var bracketParamBases = map[string]bool{
	"v.tuple":     true,
	"v.union":     true,
	"v.intersect": true,
}

func (legacyDialect) SplitPipeline(expr string) (string, []string, bool) {
	// A composed legacy expression ends in a trailing [ ... ] argument:
	// v.string([a, b]) or v.array(v.number(), [a, b]).
	open := strings.IndexByte(expr, '(')
	if open < 0 || !strings.HasSuffix(expr, ")") {
		return "", nil, false
	}
	name := expr[:open]
	args := splitArgs(expr[open+1 : len(expr)-1])
	if len(args) == 0 {
		return "", nil, false
	}
	if len(args) == 1 && bracketParamBases[name] {
		return "", nil, false
	}
	last := args[len(args)-1]
	if !strings.HasPrefix(last, "[") || !strings.HasSuffix(last, "]") {
		return "", nil, false
	}
	refinements := splitArgs(last[1 : len(last)-1])
	base := fmt.Sprintf("%s(%s)", name, strings.Join(args[:len(args)-1], ", "))
	return base, refinements, true
}

// splitArgs splits a comma-separated argument list at the top nesting level.
// Commas inside parentheses, brackets, braces or string literals are kept.
func splitArgs(s string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}
