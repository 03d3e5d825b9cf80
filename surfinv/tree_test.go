// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfinv

import (
	"math"
	"testing"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/surface"
	"github.com/cpmech/gosl/chk"
)

func Test_tree01_plane_roundtrip(t *testing.T) {
	pl, err := surface.NewPlane(-5, 5, -3, 3)
	if err != nil {
		t.Fatal(err)
	}
	tree := NewTree(pl, nil, nil)
	cases := []gmath.Vec2{{X: 1.2, Y: -0.7}, {X: -4.9, Y: 2.9}, {X: 0, Y: 0}}
	for _, want := range cases {
		p := pl.PointCanonical(want.X, want.Y)
		got := tree.Query(p)
		chk.Scalar(t, "u", 1e-6, got.X, want.X)
		chk.Scalar(t, "v", 1e-6, got.Y, want.Y)
	}
}

func Test_tree02_cylinder_roundtrip(t *testing.T) {
	cyl, err := surface.NewCylinder(2, -4, 4)
	if err != nil {
		t.Fatal(err)
	}
	tree := NewTree(cyl, nil, nil)
	for _, want := range []gmath.Vec2{
		{X: 0.3, Y: 1.0}, {X: math.Pi / 2, Y: -2.5}, {X: 3 * math.Pi / 2, Y: 0.1},
	} {
		p := cyl.PointCanonical(want.X, want.Y)
		got := tree.Query(p)
		gotP := cyl.PointCanonical(got.X, got.Y)
		if gotP.Dist(p) > 1e-3 {
			t.Fatalf("cylinder roundtrip: want point %v got (u=%v,v=%v)->%v, dist=%v", p, got.X, got.Y, gotP, gotP.Dist(p))
		}
	}
}

func Test_tree03_getUV_through_registered_inverter(t *testing.T) {
	bottom := curve.NewLine(gmath.NewVec3(0, 0, 0), gmath.NewVec3(1, 0, 0), -1)
	top := curve.NewLine(gmath.NewVec3(0, 0, 2), gmath.NewVec3(1, 0, 2), -1)
	ruled, err := surface.NewRuledSurface(bottom, top, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := ruled.PointCanonical(0.4, 0.6)
	uv := ruled.UVCanonical(p)
	back := ruled.PointCanonical(uv.X, uv.Y)
	if back.Dist(p) > 1e-2 {
		t.Fatalf("ruled UVCanonical: want near %v, got (u=%v,v=%v)->%v", p, uv.X, uv.Y, back)
	}
}
