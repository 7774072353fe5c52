// Package schema defines the schema intermediate representation consumed by
// the code generators: a normalized tree of tagged nodes, equivalent to
// TypeBox's runtime schema objects, suitable for compilation to a target
// validation library.
package schema

// Node represents one schema node. Kind selects which of the kind-specific
// fields are meaningful; everything else is ignored for that kind.
type Node struct {
	// Kind identifies the node kind.
	Kind Kind `json:"kind"`

	// Name is the node's stable identifier ($id). A named node may be
	// referenced by Ref nodes and is emitted as its own top-level
	// declaration.
	Name string `json:"$id,omitempty"`

	// String facets.
	MinLength *int    `json:"minLength,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Pattern   string  `json:"pattern,omitempty"`
	Format    string  `json:"format,omitempty"`

	// Numeric facets.
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Items is the element type for Array nodes.
	Items *Node `json:"items,omitempty"`

	// Array facets.
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`

	// Properties holds the ordered property list of an Object node.
	// Emission order equals this slice's order; it is never resorted.
	Properties []Property `json:"properties,omitempty"`

	// Patterns holds the pattern-keyed value schemas of a Record node.
	// A well-formed Record carries at least one entry.
	Patterns []RecordPattern `json:"patternProperties,omitempty"`

	// Members holds the child nodes of Union and Intersect nodes, and the
	// element types of Tuple nodes, in input order.
	Members []*Node `json:"members,omitempty"`

	// Value holds the literal value for Literal nodes
	// (string, float64 or bool).
	Value any `json:"const,omitempty"`

	// Target is the referenced name for Ref nodes.
	Target string `json:"$ref,omitempty"`

	// Transform (codec) fields. Decode is the runtime decode function used
	// for the source-shape probe; it is nil when the model was decoded from
	// JSON. Encode carries the encode function's source text, embedded
	// verbatim into the generated transform stage. Source, when set,
	// supplies the pre-decode shape explicitly and suppresses the probe.
	Decode       func(any) any `json:"-"`
	DecodeSource string        `json:"decode,omitempty"`
	Encode       string        `json:"encode,omitempty"`
	Wrapped      *Node         `json:"schema,omitempty"`
	Source       *Node         `json:"source,omitempty"`
}

// Kind classifies a schema node.
type Kind string

const (
	KindAny             Kind = "Any"
	KindArray           Kind = "Array"
	KindBigInt          Kind = "BigInt"
	KindBoolean         Kind = "Boolean"
	KindDate            Kind = "Date"
	KindConstructor     Kind = "Constructor"
	KindFunction        Kind = "Function"
	KindInteger         Kind = "Integer"
	KindIntersect       Kind = "Intersect"
	KindLiteral         Kind = "Literal"
	KindNever           Kind = "Never"
	KindNull            Kind = "Null"
	KindNumber          Kind = "Number"
	KindObject          Kind = "Object"
	KindPromise         Kind = "Promise"
	KindRecord          Kind = "Record"
	KindRef             Kind = "Ref"
	KindString          Kind = "String"
	KindTemplateLiteral Kind = "TemplateLiteral"
	KindThis            Kind = "This"
	KindTuple           Kind = "Tuple"
	KindByteArray       Kind = "Uint8Array"
	KindUndefined       Kind = "Undefined"
	KindUnion           Kind = "Union"
	KindUnknown         Kind = "Unknown"
	KindVoid            Kind = "Void"
	KindTransform       Kind = "Transform"
)

// Kinds lists every node kind. Visitors are total over this list.
var Kinds = []Kind{
	KindAny, KindArray, KindBigInt, KindBoolean, KindDate, KindConstructor,
	KindFunction, KindInteger, KindIntersect, KindLiteral, KindNever,
	KindNull, KindNumber, KindObject, KindPromise, KindRecord, KindRef,
	KindString, KindTemplateLiteral, KindThis, KindTuple, KindByteArray,
	KindUndefined, KindUnion, KindUnknown, KindVoid, KindTransform,
}

// IsSchema reports whether n looks like a well-formed schema node. The run
// driver silently skips model entries that fail this test.
func (n *Node) IsSchema() bool {
	return n != nil && n.Kind != ""
}

// Property is one property of an Object node.
type Property struct {
	Key      string `json:"key"`
	Type     *Node  `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

// RecordPattern is one pattern-keyed entry of a Record node.
type RecordPattern struct {
	Pattern string `json:"pattern"`
	Value   *Node  `json:"value"`
}

// Model is an ordered sequence of schema nodes. Insertion order is the
// emission order, so it is significant.
type Model []*Node
