package descriptor

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/ron"
)

// ResourceKind is the declared kind of a material resource slot. Texture and
// Color are disjoint: they bind to different GPU descriptor types (a
// texture+sampler pair vs a uniform buffer) and are never coerced.
type ResourceKind int

const (
	ResourceKindTexture ResourceKind = iota
	ResourceKindColor
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceKindTexture:
		return "Texture"
	case ResourceKindColor:
		return "Color"
	}
	return "Unknown"
}

// ResourceValue is a concrete value bound to a resource slot: either a
// texture path or an RGBA color. The field matching Kind is the valid one.
type ResourceValue struct {
	Kind    ResourceKind
	Texture string
	Color   math.Vec4
}

func NewTextureValue(path string) ResourceValue {
	return ResourceValue{Kind: ResourceKindTexture, Texture: path}
}

func NewColorValue(r, g, b, a float32) ResourceValue {
	return ResourceValue{Kind: ResourceKindColor, Color: math.NewVec4(r, g, b, a)}
}

// ResourceEntry is one named binding in a material binding, in file order.
type ResourceEntry struct {
	Slot  string
	Value ResourceValue
}

// decodeResourceValue decodes `Texture("path")` or `Color(Rgba(..))`.
func decodeResourceValue(v ron.Value) (ResourceValue, error) {
	switch v.Name {
	case "Texture":
		if v.Kind != ron.KindTuple || len(v.Items) != 1 || v.Items[0].Kind != ron.KindString {
			return ResourceValue{}, fmt.Errorf("%w: %d:%d: Texture expects a single path string", ErrSchema, v.Line, v.Col)
		}
		path := v.Items[0].Str
		if path == "" {
			return ResourceValue{}, fmt.Errorf("%w: %d:%d: Texture path must not be empty", ErrSchema, v.Line, v.Col)
		}
		return NewTextureValue(path), nil

	case "Color":
		if v.Kind != ron.KindTuple || len(v.Items) != 1 {
			return ResourceValue{}, fmt.Errorf("%w: %d:%d: Color expects a single color value", ErrSchema, v.Line, v.Col)
		}
		rgba, err := decodeRgba(v.Items[0])
		if err != nil {
			return ResourceValue{}, err
		}
		return ResourceValue{Kind: ResourceKindColor, Color: rgba}, nil
	}

	return ResourceValue{}, fmt.Errorf("%w: %d:%d: unknown resource value %s, expected Texture(..) or Color(..)", ErrSchema, v.Line, v.Col, v)
}

// decodeRgba accepts `Rgba(r, g, b, a)` and `Rgba(red: .., green: .., blue: ..,
// alpha: ..)`; alpha defaults to 1 in the named form.
func decodeRgba(v ron.Value) (math.Vec4, error) {
	if v.Name != "Rgba" {
		return math.Vec4{}, fmt.Errorf("%w: %d:%d: expected Rgba(..), got %s", ErrSchema, v.Line, v.Col, v)
	}

	switch v.Kind {
	case ron.KindTuple:
		if len(v.Items) != 4 {
			return math.Vec4{}, fmt.Errorf("%w: %d:%d: Rgba expects 4 components, got %d", ErrSchema, v.Line, v.Col, len(v.Items))
		}
		var out [4]float32
		for i, item := range v.Items {
			f, ok := item.Float32()
			if !ok {
				return math.Vec4{}, fmt.Errorf("%w: %d:%d: Rgba component must be a number", ErrSchema, item.Line, item.Col)
			}
			out[i] = f
		}
		return math.NewVec4(out[0], out[1], out[2], out[3]), nil

	case ron.KindStruct:
		out := math.Vec4{W: 1}
		for _, f := range v.Fields {
			c, ok := f.Value.Float32()
			if !ok {
				return math.Vec4{}, fmt.Errorf("%w: %d:%d: Rgba field %q must be a number", ErrSchema, f.Value.Line, f.Value.Col, f.Key)
			}
			switch f.Key {
			case "red":
				out.X = c
			case "green":
				out.Y = c
			case "blue":
				out.Z = c
			case "alpha":
				out.W = c
			default:
				return math.Vec4{}, fmt.Errorf("%w: %d:%d: unknown Rgba field %q", ErrSchema, f.Value.Line, f.Value.Col, f.Key)
			}
		}
		return out, nil
	}

	return math.Vec4{}, fmt.Errorf("%w: %d:%d: malformed Rgba value", ErrSchema, v.Line, v.Col)
}
