// Package descriptor defines the declarative data model of the designer:
// object descriptors, material bindings, material types and camera settings,
// decoded from parsed RON documents. Parsing errors propagate as ron.ErrParse;
// missing or mistyped fields are ErrSchema; material type invariants are
// ErrValidation.
package descriptor

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/ron"
)

// ObjectDescriptor is one renderable object as declared by a *.obj file:
// a primitive shape, a world translation and a material binding.
type ObjectDescriptor struct {
	Shape       Shape
	Translation math.Vec3
	Material    MaterialBinding
}

// MaterialBinding pairs a material type reference with the concrete resource
// values bound to its slots. Resources keep file order: slot order maps to
// bind-group binding indices.
type MaterialBinding struct {
	MaterialType string
	Resources    []ResourceEntry
}

// Resource returns the value bound to the named slot.
func (b *MaterialBinding) Resource(slot string) (ResourceValue, bool) {
	for _, e := range b.Resources {
		if e.Slot == slot {
			return e.Value, true
		}
	}
	return ResourceValue{}, false
}

// Equal reports whether two bindings reference the same material type with
// the same resources in the same order.
func (b *MaterialBinding) Equal(other *MaterialBinding) bool {
	if b.MaterialType != other.MaterialType || len(b.Resources) != len(other.Resources) {
		return false
	}
	for i := range b.Resources {
		if b.Resources[i] != other.Resources[i] {
			return false
		}
	}
	return true
}

// DecodeObject decodes an object descriptor document. Unknown top-level
// fields are tolerated for forward compatibility; the required fields are
// shape, translation and material.
func DecodeObject(data []byte) (*ObjectDescriptor, error) {
	doc, err := ron.Parse(data)
	if err != nil {
		return nil, err
	}
	if doc.Kind != ron.KindStruct || doc.Name != "" {
		return nil, fmt.Errorf("%w: %d:%d: object file must be a struct of named fields", ErrSchema, doc.Line, doc.Col)
	}

	obj := &ObjectDescriptor{}

	shape, ok := doc.Field("shape")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field shape", ErrSchema)
	}
	obj.Shape, err = decodeShape(shape)
	if err != nil {
		return nil, err
	}

	translation, ok := doc.Field("translation")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field translation", ErrSchema)
	}
	tr, err := tupleFloats(translation, 3)
	if err != nil {
		return nil, err
	}
	obj.Translation = math.NewVec3(tr[0], tr[1], tr[2])

	materialField, ok := doc.Field("material")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field material", ErrSchema)
	}
	binding, err := decodeMaterialBinding(materialField)
	if err != nil {
		return nil, err
	}
	obj.Material = *binding

	return obj, nil
}

// DecodeObjectFile decodes an object descriptor from a file.
func DecodeObjectFile(path string) (*ObjectDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, err := DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}

// decodeMaterialBinding decodes the `material:` field of an object file.
func decodeMaterialBinding(v ron.Value) (*MaterialBinding, error) {
	if v.Kind != ron.KindStruct {
		return nil, fmt.Errorf("%w: %d:%d: material must be a struct of named fields", ErrSchema, v.Line, v.Col)
	}

	binding := &MaterialBinding{}

	mt, ok := v.Field("material_type")
	if !ok || mt.Kind != ron.KindString || mt.Str == "" {
		return nil, fmt.Errorf("%w: %d:%d: material.material_type must be a non-empty path string", ErrSchema, v.Line, v.Col)
	}
	binding.MaterialType = mt.Str

	resources, ok := v.Field("resources")
	if !ok {
		return nil, fmt.Errorf("%w: %d:%d: material missing field resources", ErrSchema, v.Line, v.Col)
	}
	if resources.Kind != ron.KindMap {
		return nil, fmt.Errorf("%w: %d:%d: material.resources must be a map", ErrSchema, resources.Line, resources.Col)
	}
	for _, entry := range resources.Fields {
		value, err := decodeResourceValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("resource slot %q: %w", entry.Key, err)
		}
		binding.Resources = append(binding.Resources, ResourceEntry{Slot: entry.Key, Value: value})
	}

	return binding, nil
}
