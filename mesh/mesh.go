// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh holds the triangulated output of the surface mesher
// (M5), the mesh-plane slicing algorithm (M6a) and the OBB-tree
// collision structure (M6b).
package mesh

import (
	"github.com/cpmech/brepkernel/gmath"
	"github.com/x448/float16"
)

// Vertex is one mesh node: a single-precision position and a
// half-precision normal, following the reduced-footprint per-vertex
// encoding used by the rest of the domain stack's mesh readers for
// bulk geometry data.
type Vertex struct {
	X, Y, Z    float32
	Nx, Ny, Nz float16.Float16
}

// NewVertex packs a world-space position and unit normal into a Vertex.
func NewVertex(pos, normal gmath.Vec3) Vertex {
	return Vertex{
		X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z),
		Nx: float16.Fromfloat32(float32(normal.X)),
		Ny: float16.Fromfloat32(float32(normal.Y)),
		Nz: float16.Fromfloat32(float32(normal.Z)),
	}
}

// Position returns v's position as a full-precision Vec3.
func (v Vertex) Position() gmath.Vec3 {
	return gmath.NewVec3(float64(v.X), float64(v.Y), float64(v.Z))
}

// Normal returns v's normal decoded back to full precision.
func (v Vertex) Normal() gmath.Vec3 {
	return gmath.NewVec3(float64(v.Nx.Float32()), float64(v.Ny.Float32()), float64(v.Nz.Float32()))
}

// Mesh is a triangulated, trimmed-boundary-preserving approximation of
// a surface (or of many surfaces stitched together): Triangles is a
// flat array of vertex-index triples, Wires is a flat array of
// vertex-index pairs marking the original trimming boundary edges.
type Mesh struct {
	Vertices  []Vertex
	Triangles []int
	Wires     []int
}

// NumTriangles returns len(Triangles)/3.
func (m *Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c int) {
	return m.Triangles[3*i], m.Triangles[3*i+1], m.Triangles[3*i+2]
}

// Bound returns the axis-aligned bounding box of every vertex position.
func (m *Mesh) Bound() gmath.Bound3 {
	b := gmath.EmptyBound()
	for _, v := range m.Vertices {
		b = b.Extend(v.Position())
	}
	return b
}
