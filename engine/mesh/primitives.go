package mesh

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

// generateBox builds an axis-aligned box centered at the origin with four
// vertices per face so each face keeps its own normal and UVs.
func generateBox(x, y, z float32) *Mesh {
	hx, hy, hz := x*0.5, y*0.5, z*0.5

	type face struct {
		normal math.Vec3
		// corners in counter-clockwise order seen from outside
		corners [4]math.Vec3
	}
	faces := []face{
		{ // +Z
			normal: math.NewVec3(0, 0, 1),
			corners: [4]math.Vec3{
				{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz},
				{X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz},
			},
		},
		{ // -Z
			normal: math.NewVec3(0, 0, -1),
			corners: [4]math.Vec3{
				{X: hx, Y: -hy, Z: -hz}, {X: -hx, Y: -hy, Z: -hz},
				{X: -hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: -hz},
			},
		},
		{ // +X
			normal: math.NewVec3(1, 0, 0),
			corners: [4]math.Vec3{
				{X: hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: -hz},
				{X: hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: hz},
			},
		},
		{ // -X
			normal: math.NewVec3(-1, 0, 0),
			corners: [4]math.Vec3{
				{X: -hx, Y: -hy, Z: -hz}, {X: -hx, Y: -hy, Z: hz},
				{X: -hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: -hz},
			},
		},
		{ // +Y
			normal: math.NewVec3(0, 1, 0),
			corners: [4]math.Vec3{
				{X: -hx, Y: hy, Z: hz}, {X: hx, Y: hy, Z: hz},
				{X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz},
			},
		},
		{ // -Y
			normal: math.NewVec3(0, -1, 0),
			corners: [4]math.Vec3{
				{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz},
				{X: hx, Y: -hy, Z: hz}, {X: -hx, Y: -hy, Z: hz},
			},
		},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	m := &Mesh{
		Vertices: make([]math.Vertex3D, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for i, c := range f.corners {
			m.Vertices = append(m.Vertices, math.Vertex3D{
				Position: c,
				Normal:   f.normal,
				Texcoord: uvs[i],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// generatePlane builds a square on the XZ plane facing +Y.
func generatePlane(size float32) *Mesh {
	h := size * 0.5
	up := math.NewVec3Up()
	return &Mesh{
		Vertices: []math.Vertex3D{
			{Position: math.NewVec3(-h, 0, h), Normal: up, Texcoord: math.NewVec2(0, 1)},
			{Position: math.NewVec3(h, 0, h), Normal: up, Texcoord: math.NewVec2(1, 1)},
			{Position: math.NewVec3(h, 0, -h), Normal: up, Texcoord: math.NewVec2(1, 0)},
			{Position: math.NewVec3(-h, 0, -h), Normal: up, Texcoord: math.NewVec2(0, 0)},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// generateQuad builds a rectangle on the XY plane facing +Z. Flip mirrors
// the texture horizontally.
func generateQuad(size math.Vec2, flip bool) *Mesh {
	hx, hy := size.X*0.5, size.Y*0.5
	normal := math.NewVec3(0, 0, 1)

	u0, u1 := float32(0), float32(1)
	if flip {
		u0, u1 = 1, 0
	}

	return &Mesh{
		Vertices: []math.Vertex3D{
			{Position: math.NewVec3(-hx, -hy, 0), Normal: normal, Texcoord: math.NewVec2(u0, 1)},
			{Position: math.NewVec3(hx, -hy, 0), Normal: normal, Texcoord: math.NewVec2(u1, 1)},
			{Position: math.NewVec3(hx, hy, 0), Normal: normal, Texcoord: math.NewVec2(u1, 0)},
			{Position: math.NewVec3(-hx, hy, 0), Normal: normal, Texcoord: math.NewVec2(u0, 0)},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
