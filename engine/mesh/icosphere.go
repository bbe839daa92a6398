package mesh

import (
	gomath "math"

	"github.com/spaghettifunk/prisma/engine/math"
)

// generateIcosphere builds a sphere by subdividing an icosahedron and
// projecting the result onto the radius. Each subdivision level quadruples
// the triangle count; levels are clamped to keep meshes bounded.
func generateIcosphere(radius float32, subdivisions int) *Mesh {
	subdivisions = math.Clamp(subdivisions, 0, 6)

	// Golden-ratio icosahedron.
	t := float32((1.0 + gomath.Sqrt(5.0)) / 2.0)
	positions := []math.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range positions {
		positions[i] = positions[i].Normalized()
	}

	indices := []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	// Subdivide, sharing midpoints between neighboring triangles.
	midpoints := make(map[[2]uint32]uint32)
	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if a > b {
			key = [2]uint32{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := positions[a].Add(positions[b]).MulScalar(0.5).Normalized()
		positions = append(positions, mid)
		idx := uint32(len(positions) - 1)
		midpoints[key] = idx
		return idx
	}

	for level := 0; level < subdivisions; level++ {
		next := make([]uint32, 0, len(indices)*4)
		for i := 0; i < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			ab := midpoint(a, b)
			bc := midpoint(b, c)
			ca := midpoint(c, a)
			next = append(next,
				a, ab, ca,
				b, bc, ab,
				c, ca, bc,
				ab, bc, ca,
			)
		}
		indices = next
	}

	m := &Mesh{
		Vertices: make([]math.Vertex3D, len(positions)),
		Indices:  indices,
	}
	for i, p := range positions {
		m.Vertices[i] = math.Vertex3D{
			Position: p.MulScalar(radius),
			Normal:   p,
			Texcoord: sphereUV(p),
		}
	}
	return m
}

// sphereUV maps a unit sphere position to equirectangular coordinates.
func sphereUV(p math.Vec3) math.Vec2 {
	u := 0.5 + float32(gomath.Atan2(float64(p.Z), float64(p.X)))/(2*math.Pi)
	v := 0.5 - float32(gomath.Asin(float64(p.Y)))/math.Pi
	return math.NewVec2(u, v)
}
