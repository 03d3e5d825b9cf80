// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/brepkernel/gmath"
)

// twoTriMesh returns a flat two-triangle quad centered at the origin,
// lying in the XY plane, spanning [-size,size] on both axes.
func twoTriMesh(size float64) ([]gmath.Vec3, []int) {
	pts := []gmath.Vec3{
		{X: -size, Y: -size, Z: 0},
		{X: size, Y: -size, Z: 0},
		{X: size, Y: size, Z: 0},
		{X: -size, Y: size, Z: 0},
	}
	tris := []int{0, 1, 2, 0, 2, 3}
	return pts, tris
}

func Test_obb01_overlapping_quads_collide(t *testing.T) {
	ptsA, trisA := twoTriMesh(1)
	ptsB, trisB := twoTriMesh(1)
	a := NewCMesh(ptsA, trisA, gmath.Identity4())
	b := NewCMesh(ptsB, trisB, gmath.Translation4(gmath.NewVec3(0.5, 0.5, 0)))
	pairs := Collide(a, b, false)
	if len(pairs) == 0 {
		t.Fatal("expected overlapping quads to collide")
	}
}

func Test_obb02_separated_quads_do_not_collide(t *testing.T) {
	ptsA, trisA := twoTriMesh(1)
	ptsB, trisB := twoTriMesh(1)
	a := NewCMesh(ptsA, trisA, gmath.Identity4())
	b := NewCMesh(ptsB, trisB, gmath.Translation4(gmath.NewVec3(10, 10, 0)))
	pairs := Collide(a, b, false)
	if len(pairs) != 0 {
		t.Fatalf("expected no collision, got %d pairs", len(pairs))
	}
}

func Test_obb03_parallel_offset_quads_do_not_collide(t *testing.T) {
	ptsA, trisA := twoTriMesh(1)
	ptsB, trisB := twoTriMesh(1)
	a := NewCMesh(ptsA, trisA, gmath.Identity4())
	b := NewCMesh(ptsB, trisB, gmath.Translation4(gmath.NewVec3(0, 0, 5)))
	pairs := Collide(a, b, false)
	if len(pairs) != 0 {
		t.Fatalf("expected parallel quads offset 5 in z not to collide, got %d pairs", len(pairs))
	}
}

func Test_obb04_first_only_stops_at_one_pair(t *testing.T) {
	ptsA, trisA := twoTriMesh(5)
	ptsB, trisB := twoTriMesh(5)
	a := NewCMesh(ptsA, trisA, gmath.Identity4())
	b := NewCMesh(ptsB, trisB, gmath.Identity4())
	pairs := Collide(a, b, true)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one pair with firstOnly, got %d", len(pairs))
	}
}
