// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"testing"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

func Test_arc01_quarter_circle(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test arc01")

	cs, err := gmath.NewCoordSys(gmath.Vec3{}, gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	if err != nil {
		tst.Fatalf("coordsys: %v", err)
	}
	a := NewArc(cs, 1, math.Pi/2, -1)

	out := a.Discretize(nil, 0.01, math.Pi/16)
	if len(out) < 8 {
		tst.Errorf("expected at least 8 points, got %d", len(out))
	}
	chk.Vector(tst, "first point", 1e-12, []float64{out[0].X, out[0].Y, out[0].Z}, []float64{1, 0, 0})

	for i := 2; i < len(out); i++ {
		ang := turnAngle(out[i-2], out[i-1], out[i])
		if ang > math.Pi/16+1e-9 {
			tst.Errorf("turn angle %v exceeds max_ang_step at i=%d", ang, i)
		}
	}
}

func Test_arc02_full_circle_even_steps(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test arc02")

	cs, _ := gmath.NewCoordSys(gmath.Vec3{}, gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	a := NewArc(cs, 2, 2*math.Pi, -1)
	out := a.Discretize(nil, 0.05, math.Pi/10)
	chk.Ints(tst, "even step count", []int{len(out) % 2}, []int{0})
}

func Test_arc03_getT_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test arc03")

	cs, _ := gmath.NewCoordSys(gmath.Vec3{}, gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	a := NewArc(cs, 1, math.Pi, -1)
	for _, t := range []float64{0, 0.1, 0.4, 0.6, 0.9, 1} {
		p := a.Point(t)
		got := a.GetT(p)
		chk.Scalar(tst, "getT(point(t))", 1e-6, got, t)
	}
}

func Test_arc04_cylinder_inversion_scenario(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test arc04 cylinder-style point recovery")

	// checks the closed-form inverse directly on the Arc primitive
	cs, _ := gmath.NewCoordSys(gmath.Vec3{}, gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	a := NewArc(cs, 5, 2*math.Pi, -1)
	theta := 1.2
	p := gmath.NewVec3(5*math.Cos(theta), 5*math.Sin(theta), 0)
	tGot := a.GetT(p)
	angGot := tGot * a.Alpha
	chk.Scalar(tst, "theta", 1e-6, angGot, theta)
}
