package descriptor

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/prisma/engine/ron"
)

// Pipeline names the shader stages of a material type. Vertex is required;
// Fragment is optional (empty string when absent).
type Pipeline struct {
	Vertex   string
	Fragment string
}

// HasFragment reports whether a fragment stage is declared.
func (p Pipeline) HasFragment() bool {
	return p.Fragment != ""
}

// ResourceSlot is one declared binding point of a material type.
type ResourceSlot struct {
	Name string
	Kind ResourceKind
}

// MaterialType is the schema side of a material: a shader pipeline and the
// resource slots objects must fill. Loaded once per path and shared
// read-only between all objects referencing it.
type MaterialType struct {
	Name          string
	Pipeline      Pipeline
	ResourceTypes []ResourceSlot
}

// SlotKind returns the declared kind of the named slot.
func (mt *MaterialType) SlotKind(name string) (ResourceKind, bool) {
	for _, s := range mt.ResourceTypes {
		if s.Name == name {
			return s.Kind, true
		}
	}
	return 0, false
}

// UsesShader reports whether the pipeline references the given shader path.
func (mt *MaterialType) UsesShader(path string) bool {
	return mt.Pipeline.Vertex == path || mt.Pipeline.Fragment == path
}

// DecodeMaterialType decodes and validates a material type document.
func DecodeMaterialType(data []byte) (*MaterialType, error) {
	doc, err := ron.Parse(data)
	if err != nil {
		return nil, err
	}
	if doc.Kind != ron.KindStruct || doc.Name != "" {
		return nil, fmt.Errorf("%w: %d:%d: material type file must be a struct of named fields", ErrSchema, doc.Line, doc.Col)
	}

	mt := &MaterialType{}

	name, ok := doc.Field("name")
	if !ok || name.Kind != ron.KindString || name.Str == "" {
		return nil, fmt.Errorf("%w: name must be a non-empty string", ErrSchema)
	}
	mt.Name = name.Str

	pipeline, ok := doc.Field("pipeline")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field pipeline", ErrSchema)
	}
	mt.Pipeline, err = decodePipeline(pipeline)
	if err != nil {
		return nil, err
	}

	resourceTypes, ok := doc.Field("resource_types")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field resource_types", ErrSchema)
	}
	if resourceTypes.Kind != ron.KindMap {
		return nil, fmt.Errorf("%w: %d:%d: resource_types must be a map", ErrSchema, resourceTypes.Line, resourceTypes.Col)
	}
	for _, entry := range resourceTypes.Fields {
		kind, err := decodeResourceKind(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("resource slot %q: %w", entry.Key, err)
		}
		mt.ResourceTypes = append(mt.ResourceTypes, ResourceSlot{Name: entry.Key, Kind: kind})
	}

	return mt, nil
}

// DecodeMaterialTypeFile decodes a material type from a file.
func DecodeMaterialTypeFile(path string) (*MaterialType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mt, err := DecodeMaterialType(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mt, nil
}

// decodePipeline decodes `pipeline: (vertex: "..", fragment: ..)`. The
// fragment stage accepts None, Some("path") and a bare "path".
func decodePipeline(v ron.Value) (Pipeline, error) {
	if v.Kind != ron.KindStruct {
		return Pipeline{}, fmt.Errorf("%w: %d:%d: pipeline must be a struct of named fields", ErrSchema, v.Line, v.Col)
	}

	p := Pipeline{}

	vertex, ok := v.Field("vertex")
	if !ok || vertex.Kind != ron.KindString || vertex.Str == "" {
		return Pipeline{}, fmt.Errorf("%w: %d:%d: pipeline.vertex is required and must be a path string", ErrValidation, v.Line, v.Col)
	}
	p.Vertex = vertex.Str

	fragment, ok := v.Field("fragment")
	if !ok {
		return p, nil
	}
	switch {
	case fragment.Kind == ron.KindUnit && fragment.Name == "None":
		// explicit no fragment stage
	case fragment.Kind == ron.KindTuple && fragment.Name == "Some" && len(fragment.Items) == 1 && fragment.Items[0].Kind == ron.KindString:
		p.Fragment = fragment.Items[0].Str
	case fragment.Kind == ron.KindString:
		p.Fragment = fragment.Str
	default:
		return Pipeline{}, fmt.Errorf("%w: %d:%d: pipeline.fragment must be None, Some(path) or a path string", ErrSchema, fragment.Line, fragment.Col)
	}

	return p, nil
}

// decodeResourceKind decodes a declared slot kind: the unit identifier
// Texture or Color.
func decodeResourceKind(v ron.Value) (ResourceKind, error) {
	if v.Kind != ron.KindUnit {
		return 0, fmt.Errorf("%w: %d:%d: resource kind must be Texture or Color", ErrValidation, v.Line, v.Col)
	}
	switch v.Name {
	case "Texture":
		return ResourceKindTexture, nil
	case "Color":
		return ResourceKindColor, nil
	}
	return 0, fmt.Errorf("%w: %d:%d: unrecognized resource kind %q", ErrValidation, v.Line, v.Col, v.Name)
}
