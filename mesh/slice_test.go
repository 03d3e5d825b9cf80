// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

// unitBoxMesh returns a closed two-triangle-per-face box spanning
// [-1,1]^3; every vertex gets the same (0,0,1) normal, since slicing
// does not read normals.
func unitBoxMesh() *Mesh {
	corners := []gmath.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	verts := make([]Vertex, len(corners))
	for i, c := range corners {
		verts[i] = NewVertex(c, gmath.NewVec3(0, 0, 1))
	}
	faces := [][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{2, 3, 7, 6}, // back
		{1, 2, 6, 5}, // right
		{3, 0, 4, 7}, // left
	}
	var tris []int
	for _, f := range faces {
		tris = append(tris, f[0], f[1], f[2], f[0], f[2], f[3])
	}
	return &Mesh{Vertices: verts, Triangles: tris}
}

func Test_slice01_box_through_middle_is_a_closed_square(t *testing.T) {
	box := unitBoxMesh()
	plane := Plane{N: gmath.NewVec3(0, 0, 1), D: 0}
	chains := Slice([]*Mesh{box}, plane)
	if len(chains) != 1 {
		t.Fatalf("expected one chain, got %d", len(chains))
	}
	ch := chains[0]
	if !ch.Closed {
		t.Fatal("expected a closed loop slicing through a box's middle")
	}
	if len(ch.Points) != 4 {
		t.Fatalf("expected 4 points on the cut square, got %d", len(ch.Points))
	}
	for _, p := range ch.Points {
		chk.Scalar(t, "z on plane", 1e-9, p.Z, 0)
	}
	wantPerimeter := 8.0
	chk.Scalar(t, "perimeter", 1e-9, ch.Length(), wantPerimeter)
}

func Test_slice02_plane_missing_box_yields_nothing(t *testing.T) {
	box := unitBoxMesh()
	plane := Plane{N: gmath.NewVec3(0, 0, 1), D: -5}
	chains := Slice([]*Mesh{box}, plane)
	if len(chains) != 0 {
		t.Fatalf("expected no chains, got %d", len(chains))
	}
}

func Test_slice03_corner_cut_is_a_closed_triangle(t *testing.T) {
	box := unitBoxMesh()
	plane := Plane{N: gmath.NewVec3(1, 1, 1).Normalize(), D: -1.2}
	chains := Slice([]*Mesh{box}, plane)
	if len(chains) != 1 {
		t.Fatalf("expected one chain cutting the (1,1,1) corner, got %d", len(chains))
	}
	if !chains[0].Closed || len(chains[0].Points) != 3 {
		t.Fatalf("expected a closed triangle, got closed=%v points=%d", chains[0].Closed, len(chains[0].Points))
	}
}
