package descriptor

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/ron"
)

// Shape is the tagged primitive shape variant of an object descriptor. All
// concrete shapes are comparable value types so reload diffing can use ==.
type Shape interface {
	// ShapeName returns the variant name as written in object files.
	ShapeName() string
}

// CapsuleUVProfile selects how a capsule's V texture coordinate is
// distributed between the hemispheres and the cylinder section.
type CapsuleUVProfile int

const (
	// CapsuleUVAspect spreads V proportionally to the section heights.
	CapsuleUVAspect CapsuleUVProfile = iota
	// CapsuleUVUniform gives each section a third of the V range.
	CapsuleUVUniform
	// CapsuleUVFixed gives the cylinder the middle half of the V range.
	CapsuleUVFixed
)

func (p CapsuleUVProfile) String() string {
	switch p {
	case CapsuleUVAspect:
		return "Aspect"
	case CapsuleUVUniform:
		return "Uniform"
	case CapsuleUVFixed:
		return "Fixed"
	}
	return "Unknown"
}

type Box struct {
	X, Y, Z float32
}

type Capsule struct {
	Radius     float32
	Rings      int
	Depth      float32
	Latitudes  int
	Longitudes int
	UVProfile  CapsuleUVProfile
}

type Cube struct {
	Size float32
}

type Icosphere struct {
	Radius       float32
	Subdivisions int
}

type Plane struct {
	Size float32
}

type Quad struct {
	Size math.Vec2
	Flip bool
}

type Torus struct {
	Radius               float32
	RingRadius           float32
	SubdivisionsSegments int
	SubdivisionsSides    int
}

func (Box) ShapeName() string       { return "Box" }
func (Capsule) ShapeName() string   { return "Capsule" }
func (Cube) ShapeName() string      { return "Cube" }
func (Icosphere) ShapeName() string { return "Icosphere" }
func (Plane) ShapeName() string     { return "Plane" }
func (Quad) ShapeName() string      { return "Quad" }
func (Torus) ShapeName() string     { return "Torus" }

// decodeShape decodes the `shape:` field of an object descriptor.
func decodeShape(v ron.Value) (Shape, error) {
	switch v.Name {
	case "Box":
		items, err := tupleFloats(v, 3)
		if err != nil {
			return nil, err
		}
		return Box{X: items[0], Y: items[1], Z: items[2]}, nil

	case "Cube":
		items, err := tupleFloats(v, 1)
		if err != nil {
			return nil, err
		}
		return Cube{Size: items[0]}, nil

	case "Plane":
		items, err := tupleFloats(v, 1)
		if err != nil {
			return nil, err
		}
		return Plane{Size: items[0]}, nil

	case "Capsule":
		fd, err := newFieldDecoder(v)
		if err != nil {
			return nil, err
		}
		c := Capsule{}
		c.Radius, err = fd.float("radius", err)
		c.Rings, err = fd.int("rings", err)
		c.Depth, err = fd.float("depth", err)
		c.Latitudes, err = fd.int("latitudes", err)
		c.Longitudes, err = fd.int("longitudes", err)
		if err != nil {
			return nil, err
		}
		uv, ok := v.Field("uv_profile")
		if !ok {
			return nil, fmt.Errorf("%w: %d:%d: Capsule missing field uv_profile", ErrSchema, v.Line, v.Col)
		}
		c.UVProfile, err = decodeUVProfile(uv)
		if err != nil {
			return nil, err
		}
		return c, nil

	case "Icosphere":
		fd, err := newFieldDecoder(v)
		if err != nil {
			return nil, err
		}
		s := Icosphere{}
		s.Radius, err = fd.float("radius", err)
		s.Subdivisions, err = fd.int("subdivisions", err)
		if err != nil {
			return nil, err
		}
		return s, nil

	case "Quad":
		if v.Kind != ron.KindStruct {
			return nil, fmt.Errorf("%w: %d:%d: Quad expects named fields", ErrSchema, v.Line, v.Col)
		}
		q := Quad{}
		size, ok := v.Field("size")
		if !ok {
			return nil, fmt.Errorf("%w: %d:%d: Quad missing field size", ErrSchema, v.Line, v.Col)
		}
		sz, err := tupleFloats(size, 2)
		if err != nil {
			return nil, err
		}
		q.Size = math.NewVec2(sz[0], sz[1])
		flip, ok := v.Field("flip")
		if !ok || flip.Kind != ron.KindBool {
			return nil, fmt.Errorf("%w: %d:%d: Quad field flip must be a bool", ErrSchema, v.Line, v.Col)
		}
		q.Flip = flip.Bool
		return q, nil

	case "Torus":
		fd, err := newFieldDecoder(v)
		if err != nil {
			return nil, err
		}
		t := Torus{}
		t.Radius, err = fd.float("radius", err)
		t.RingRadius, err = fd.float("ring_radius", err)
		t.SubdivisionsSegments, err = fd.int("subdivisions_segments", err)
		t.SubdivisionsSides, err = fd.int("subdivisions_sides", err)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	return nil, fmt.Errorf("%w: %d:%d: unknown shape %s", ErrSchema, v.Line, v.Col, v)
}

func decodeUVProfile(v ron.Value) (CapsuleUVProfile, error) {
	if v.Kind != ron.KindUnit {
		return 0, fmt.Errorf("%w: %d:%d: uv_profile must be Aspect, Uniform or Fixed", ErrSchema, v.Line, v.Col)
	}
	switch v.Name {
	case "Aspect":
		return CapsuleUVAspect, nil
	case "Uniform":
		return CapsuleUVUniform, nil
	case "Fixed":
		return CapsuleUVFixed, nil
	}
	return 0, fmt.Errorf("%w: %d:%d: unknown uv_profile %q", ErrSchema, v.Line, v.Col, v.Name)
}

// tupleFloats requires v to be a tuple of exactly n numbers.
func tupleFloats(v ron.Value, n int) ([]float32, error) {
	if v.Kind != ron.KindTuple || len(v.Items) != n {
		return nil, fmt.Errorf("%w: %d:%d: %s expects %d numeric components", ErrSchema, v.Line, v.Col, v, n)
	}
	out := make([]float32, n)
	for i, item := range v.Items {
		f, ok := item.Float32()
		if !ok {
			return nil, fmt.Errorf("%w: %d:%d: component %d must be a number", ErrSchema, item.Line, item.Col, i)
		}
		out[i] = f
	}
	return out, nil
}

// fieldDecoder extracts required numeric fields from a struct value, carrying
// the first error through chained calls.
type fieldDecoder struct {
	v ron.Value
}

func newFieldDecoder(v ron.Value) (fieldDecoder, error) {
	if v.Kind != ron.KindStruct {
		return fieldDecoder{}, fmt.Errorf("%w: %d:%d: %s expects named fields", ErrSchema, v.Line, v.Col, v)
	}
	return fieldDecoder{v: v}, nil
}

func (fd fieldDecoder) float(name string, prev error) (float32, error) {
	if prev != nil {
		return 0, prev
	}
	f, ok := fd.v.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %d:%d: %s missing field %s", ErrSchema, fd.v.Line, fd.v.Col, fd.v.Name, name)
	}
	val, ok := f.Float32()
	if !ok {
		return 0, fmt.Errorf("%w: %d:%d: field %s must be a number", ErrSchema, f.Line, f.Col, name)
	}
	return val, nil
}

func (fd fieldDecoder) int(name string, prev error) (int, error) {
	if prev != nil {
		return 0, prev
	}
	f, ok := fd.v.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %d:%d: %s missing field %s", ErrSchema, fd.v.Line, fd.v.Col, fd.v.Name, name)
	}
	val, ok := f.Int()
	if !ok || val < 0 {
		return 0, fmt.Errorf("%w: %d:%d: field %s must be a non-negative integer", ErrSchema, f.Line, f.Col, name)
	}
	return val, nil
}
