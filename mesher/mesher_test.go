// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"math"
	"testing"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/surface"
)

func identityCS(t *testing.T) gmath.CoordSys {
	cs, err := gmath.NewCoordSys(gmath.NewVec3(0, 0, 0), gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func rimCS(t *testing.T, z float64) gmath.CoordSys {
	cs, err := gmath.NewCoordSys(gmath.NewVec3(0, 0, z), gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func Test_mesher01_plane_quad(t *testing.T) {
	pl, err := surface.NewPlane(-1, 1, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	square := curve.NewPolyline([]gmath.Vec3{
		{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: -1, Y: -1, Z: 0},
	}, -1)
	contour := curve.NewContour([]curve.Curve{square})
	s := surface.NewCSSurface(identityCS(t), pl, []curve.Contour{contour}, surface.Flags{})

	m, err := Build(s, DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() == 0 {
		t.Fatal("expected at least one triangle")
	}
	bnd := m.Bound()
	if bnd.Min.Z != 0 || bnd.Max.Z != 0 {
		t.Fatalf("expected a flat z=0 mesh, got bound %+v", bnd)
	}
}

func Test_mesher02_full_cylinder_strip(t *testing.T) {
	cyl, err := surface.NewCylinder(2, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	bottom := curve.NewContour([]curve.Curve{curve.NewArc(rimCS(t, 0), 2, 2*math.Pi, -1)})
	top := curve.NewContour([]curve.Curve{curve.NewArc(rimCS(t, 5), 2, 2*math.Pi, -1)})
	s := surface.NewCSSurface(identityCS(t), cyl, []curve.Contour{bottom, top}, surface.Flags{})

	m, err := Build(s, DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() == 0 {
		t.Fatal("expected at least one triangle from the cylinder fast path")
	}
	for _, v := range m.Vertices {
		r := math.Hypot(float64(v.X), float64(v.Y))
		if math.Abs(r-2) > 1e-2 {
			t.Fatalf("expected every vertex on radius 2, got %v", r)
		}
	}
}

func Test_mesher03_nonconvex_contour_triangulates(t *testing.T) {
	pl, err := surface.NewPlane(-2, 2, -2, 2)
	if err != nil {
		t.Fatal(err)
	}
	// an L-shaped polygon
	lshape := curve.NewPolyline([]gmath.Vec3{
		{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: -1, Y: -1, Z: 0},
	}, -1)
	contour := curve.NewContour([]curve.Curve{lshape})
	s := surface.NewCSSurface(identityCS(t), pl, []curve.Contour{contour}, surface.Flags{})

	m, err := Build(s, DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() < 3 {
		t.Fatalf("expected several triangles covering an L-shape, got %d", m.NumTriangles())
	}
}

func Test_mesher04_multi_curve_boundary_wires_every_edge(t *testing.T) {
	pl, err := surface.NewPlane(-1, 1, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	// a rectangle built from 4 separate Line curves, joined end to end,
	// rather than a single closed Polyline
	corners := []gmath.Vec3{
		{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0},
	}
	var sides []curve.Curve
	for i := range corners {
		sides = append(sides, curve.NewLine(corners[i], corners[(i+1)%len(corners)], -1))
	}
	contour := curve.NewContour(sides)
	s := surface.NewCSSurface(identityCS(t), pl, []curve.Contour{contour}, surface.Flags{})

	m, err := Build(s, DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Wires) != 2*len(corners) {
		t.Fatalf("expected %d wire indices (one edge per side), got %d: %v", 2*len(corners), len(m.Wires), m.Wires)
	}
}
