// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveinv

import (
	"math"
	"testing"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

func straightLineNurbs() *curve.NurbsCurve {
	ctrl := []gmath.Vec3{
		gmath.NewVec3(0, 0, 0),
		gmath.NewVec3(1, 0, 0),
		gmath.NewVec3(2, 0, 0),
		gmath.NewVec3(3, 0, 0),
	}
	knots := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	n, err := curve.NewNurbsCurve(ctrl, knots, nil, 0)
	if err != nil {
		panic(err)
	}
	return n
}

func quarterCircleNurbs() *curve.NurbsCurve {
	w := math.Sqrt2 / 2
	ctrl := []gmath.Vec3{
		gmath.NewVec3(1, 0, 0),
		gmath.NewVec3(1, 1, 0),
		gmath.NewVec3(0, 1, 0),
	}
	weights := []float64{1, w, 1}
	knots := []float64{0, 0, 0, 1, 1, 1}
	n, err := curve.NewNurbsCurve(ctrl, knots, weights, 0)
	if err != nil {
		panic(err)
	}
	return n
}

func Test_tree01_straight_line_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test tree01 straight-line roundtrip")

	n := straightLineNurbs()
	tr := NewTree(n, nil, nil)
	for _, want := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		p := n.Point(want)
		got, ov := tr.Query(p)
		if ov != OverrunNil {
			tst.Errorf("unexpected overrun at t=%v: %v", want, ov)
		}
		chk.Scalar(tst, "t", 1e-4, got, want)
	}
}

func Test_tree02_quarter_circle_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test tree02 quarter-circle roundtrip")

	n := quarterCircleNurbs()
	tr := NewTree(n, nil, nil)
	for _, want := range []float64{0.05, 0.3, 0.5, 0.7, 0.95} {
		p := n.Point(want)
		got, _ := tr.Query(p)
		chk.Scalar(tst, "t", 1e-3, got, want)
	}
}

func Test_tree03_getT_through_registered_inverter(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test tree03 GetT via registered inverter")

	n := straightLineNurbs()
	for _, want := range []float64{0, 0.2, 0.6, 1} {
		p := n.Point(want)
		got := n.GetT(p)
		chk.Scalar(tst, "t", 1e-4, got, want)
	}
}

func Test_tree04_offcurve_point_stays_in_domain(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test tree04 off-curve point stays within [0,1]")

	n := straightLineNurbs()
	tr := NewTree(n, nil, nil)
	p := gmath.NewVec3(1.5, 2, 0) // well off the line, nearest to its midpoint
	got, _ := tr.Query(p)
	if got < -1e-6 || got > 1+1e-6 {
		tst.Errorf("t=%v escaped domain", got)
	}
}
