package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryCollectsNestedNames(t *testing.T) {
	model := Model{
		{Kind: KindObject, Name: "Parent", Properties: []Property{
			{Key: "child", Type: &Node{Kind: KindString, Name: "Child"}},
		}},
		{Kind: KindArray, Name: "List", Items: &Node{
			Kind: KindUnion, Name: "Member", Members: []*Node{
				{Kind: KindLiteral, Name: "Tag", Value: "a"},
			},
		}},
	}

	r := BuildRegistry(model)

	for _, name := range []string{"Parent", "Child", "List", "Member", "Tag"} {
		assert.True(t, r.Has(name), "missing %s", name)
	}
	assert.Equal(t, 5, r.Len())
}

func TestBuildRegistryCollectsTransformSides(t *testing.T) {
	model := Model{
		{Kind: KindTransform, Name: "Codec",
			Source:  &Node{Kind: KindString, Name: "Raw"},
			Wrapped: &Node{Kind: KindNumber, Name: "Parsed"},
		},
	}

	r := BuildRegistry(model)
	assert.True(t, r.Has("Raw"))
	assert.True(t, r.Has("Parsed"))
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	n := &Node{Kind: KindString, Name: "T"}
	r.Register("T", n)

	got, ok := r.Resolve("T")
	require.True(t, ok)
	assert.Same(t, n, got)

	_, ok = r.Resolve("Missing")
	assert.False(t, ok)
}

func TestIsSchema(t *testing.T) {
	assert.False(t, (*Node)(nil).IsSchema())
	assert.False(t, (&Node{}).IsSchema())
	assert.True(t, (&Node{Kind: KindAny}).IsSchema())
}

func TestDecodeModel(t *testing.T) {
	data := []byte(`[
		{
			"kind": "Object",
			"$id": "User",
			"properties": [
				{"key": "name", "type": {"kind": "String", "maxLength": 64}},
				{"key": "age", "type": {"kind": "Integer", "minimum": 0}, "optional": true}
			]
		},
		{
			"kind": "Transform",
			"$id": "Timestamp",
			"decode": "(value) => new Date(value)",
			"encode": "(value) => value.toISOString()",
			"schema": {"kind": "Date"},
			"source": {"kind": "String", "format": "date-time"}
		}
	]`)

	model, err := DecodeModel(data)
	require.NoError(t, err)
	require.Len(t, model, 2)

	user := model[0]
	assert.Equal(t, KindObject, user.Kind)
	assert.Equal(t, "User", user.Name)
	require.Len(t, user.Properties, 2)
	assert.Equal(t, "name", user.Properties[0].Key)
	require.NotNil(t, user.Properties[0].Type.MaxLength)
	assert.Equal(t, 64, *user.Properties[0].Type.MaxLength)
	assert.True(t, user.Properties[1].Optional)

	ts := model[1]
	assert.Equal(t, KindTransform, ts.Kind)
	assert.Nil(t, ts.Decode, "runtime decode functions cannot come from JSON")
	assert.Equal(t, "(value) => new Date(value)", ts.DecodeSource)
	require.NotNil(t, ts.Source)
	assert.Equal(t, "date-time", ts.Source.Format)
}

func TestDecodeModelRejectsGarbage(t *testing.T) {
	_, err := DecodeModel([]byte(`{"not": "a model"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema model")
}

func TestEncodeModelRoundTrip(t *testing.T) {
	model := Model{
		{Kind: KindString, Name: "T", Pattern: "^a+$"},
	}

	data, err := EncodeModel(model)
	require.NoError(t, err)

	back, err := DecodeModel(data)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "T", back[0].Name)
	assert.Equal(t, "^a+$", back[0].Pattern)
}
