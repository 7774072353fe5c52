package codegen

import (
	"testing"

	"github.com/glucoseinc/typebox-codegen/internal/diagnostic"
	"github.com/glucoseinc/typebox-codegen/internal/dialect"
	"github.com/glucoseinc/typebox-codegen/internal/schema"
)

func boundedNumber() *schema.Node {
	return &schema.Node{Kind: schema.KindNumber, Minimum: ptrFloat(1), Maximum: ptrFloat(50)}
}

func TestCodecStringToNumberPipeline(t *testing.T) {
	model := schema.Model{
		{
			Kind:    schema.KindTransform,
			Name:    "Test",
			Decode:  func(any) any { return "1" },
			Encode:  "(value) => value.toString()",
			Wrapped: boundedNumber(),
		},
	}

	out, err := Generate(model, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Source inferred from the probe, the encode text embedded verbatim,
	// then the target's refinements spliced in declared order.
	assertContains(t, out,
		"export const Test = v.pipe(v.string(), v.transform((value) => value.toString()), v.minValue(1), v.maxValue(50))")
	// The target pipeline is flattened, not nested.
	assertNotContains(t, out, "v.pipe(v.pipe")
	assertNotContains(t, out, "v.number()")
}

func TestCodecLegacyComposition(t *testing.T) {
	model := schema.Model{
		{
			Kind:    schema.KindTransform,
			Name:    "Test",
			Decode:  func(any) any { return "1" },
			Encode:  "(value) => value.toString()",
			Wrapped: boundedNumber(),
		},
	}

	out, err := Generate(model, Options{Version: dialect.V030})
	if err != nil {
		t.Fatal(err)
	}

	assertContains(t, out,
		"export const Test = v.transform(v.string(), (value) => value.toString(), [v.minValue(1), v.maxValue(50)])")
}

func TestCodecLegacyCompoundTargetHasNoRefinements(t *testing.T) {
	members := []*schema.Node{
		{Kind: schema.KindString}, {Kind: schema.KindNumber},
	}
	for _, kind := range []schema.Kind{
		schema.KindTuple, schema.KindUnion, schema.KindIntersect,
	} {
		t.Run(string(kind), func(t *testing.T) {
			out, err := Generate(schema.Model{
				{
					Kind:    schema.KindTransform,
					Name:    "Test",
					Decode:  func(any) any { return "1" },
					Encode:  "(value) => value.toString()",
					Wrapped: &schema.Node{Kind: kind, Members: members},
				},
			}, Options{Version: dialect.V030})
			if err != nil {
				t.Fatal(err)
			}

			// The member list is the constructor's parameter, not a
			// refinement list; a compound target contributes no refinements.
			assertContains(t, out,
				"export const Test = v.transform(v.string(), (value) => value.toString())")
			assertNotContains(t, out, "[v.string(), v.number()]")
		})
	}
}

func TestCodecBareTargetHasNoRefinements(t *testing.T) {
	model := schema.Model{
		{
			Kind:    schema.KindTransform,
			Name:    "Test",
			Decode:  func(any) any { return "x" },
			Encode:  "(value) => value.toString()",
			Wrapped: &schema.Node{Kind: schema.KindNumber},
		},
	}

	out, err := Generate(model, Options{})
	if err != nil {
		t.Fatal(err)
	}

	assertContains(t, out,
		"export const Test = v.pipe(v.string(), v.transform((value) => value.toString()))")
}

func TestCodecProbeClassifiesRuntimeType(t *testing.T) {
	tests := []struct {
		name     string
		decode   func(any) any
		expected string
	}{
		{"string", func(any) any { return "s" }, "v.string()"},
		{"array", func(any) any { return []any{1} }, "v.array(v.any())"},
		{"object", func(any) any { return map[string]any{} }, "v.object({})"},
		{"other", func(any) any { return 3.5 }, "v.any()"},
		{"nil", func(any) any { return nil }, "v.any()"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Generate(schema.Model{
				{
					Kind:    schema.KindTransform,
					Name:    "Test",
					Decode:  tc.decode,
					Encode:  "(value) => value",
					Wrapped: &schema.Node{Kind: schema.KindAny},
				},
			}, Options{})
			if err != nil {
				t.Fatal(err)
			}
			assertContains(t, out, "v.pipe("+tc.expected+", v.transform((value) => value))")
		})
	}
}

func TestCodecProbeFailureDegrades(t *testing.T) {
	diags := diagnostic.NewCollector(false)
	model := schema.Model{
		{
			Kind:         schema.KindTransform,
			Name:         "Test",
			Decode:       func(any) any { panic("boom") },
			DecodeSource: "(value) => { throw new Error('boom') }",
			Encode:       "(value) => value",
			Wrapped:      boundedNumber(),
		},
	}

	out, err := Generate(model, Options{Diags: diags})
	if err != nil {
		t.Fatal(err)
	}

	assertContains(t, out, "v.pipe("+Unsupported+", v.transform((value) => value), v.minValue(1), v.maxValue(50))")

	found := false
	for _, d := range diags.Diagnostics() {
		if d.Category == diagnostic.CategoryCodecProbe {
			found = true
			assertContains(t, d.Message, "boom")
			assertContains(t, d.Message, "throw new Error")
		}
	}
	if !found {
		t.Error("expected a codec-probe diagnostic")
	}
}

func TestCodecMissingDecodeDegrades(t *testing.T) {
	// Models decoded from JSON carry no runtime decode function.
	diags := diagnostic.NewCollector(false)
	model := schema.Model{
		{
			Kind:    schema.KindTransform,
			Name:    "Test",
			Encode:  "(value) => value",
			Wrapped: &schema.Node{Kind: schema.KindNumber},
		},
	}

	out, err := Generate(model, Options{Diags: diags})
	if err != nil {
		t.Fatal(err)
	}

	assertContains(t, out, "v.pipe("+Unsupported+", v.transform((value) => value))")
	if diags.WarningCount() == 0 {
		t.Error("expected a diagnostic for the missing decode function")
	}
}

func TestCodecExplicitSourceSuppressesProbe(t *testing.T) {
	model := schema.Model{
		{
			Kind:   schema.KindTransform,
			Name:   "Test",
			Source: &schema.Node{Kind: schema.KindString, MaxLength: ptrInt(8)},
			// Decode would classify as number-ish; the explicit source wins.
			Decode:  func(any) any { return 5 },
			Encode:  "(value) => value.toString()",
			Wrapped: &schema.Node{Kind: schema.KindNumber},
		},
	}

	out, err := Generate(model, Options{})
	if err != nil {
		t.Fatal(err)
	}

	assertContains(t, out, "v.pipe(v.pipe(v.string(), v.maxLength(8)), v.transform((value) => value.toString()))")
}

func TestCodecInsideObjectProperties(t *testing.T) {
	codec := func() *schema.Node {
		return &schema.Node{
			Kind:    schema.KindTransform,
			Decode:  func(any) any { return "1" },
			Encode:  "(value) => value.toString()",
			Wrapped: boundedNumber(),
		}
	}
	model := schema.Model{
		{Kind: schema.KindObject, Name: "Test", Properties: []schema.Property{
			{Key: "required", Type: codec()},
			{Key: "relaxed", Type: codec(), Optional: true},
		}},
	}

	out, err := Generate(model, Options{})
	if err != nil {
		t.Fatal(err)
	}

	pipeline := "v.pipe(v.string(), v.transform((value) => value.toString()), v.minValue(1), v.maxValue(50))"
	assertContains(t, out, "required: "+pipeline)
	assertContains(t, out, "relaxed: v.optional("+pipeline+")")
}
