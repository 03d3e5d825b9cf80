// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

func Test_line01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test line01")

	l := NewLine(gmath.NewVec3(0, 0, 0), gmath.NewVec3(10, 0, 0), -1)

	s, e := l.Start(), l.End()
	chk.Vector(tst, "start", 1e-15, []float64{s.X, s.Y, s.Z}, []float64{0, 0, 0})
	chk.Vector(tst, "end", 1e-15, []float64{e.X, e.Y, e.Z}, []float64{10, 0, 0})

	out := l.Discretize(nil, 0.01, 0.1)
	chk.Ints(tst, "len(discretize)", []int{len(out)}, []int{1})
	chk.Vector(tst, "discretize[0]", 1e-15, []float64{out[0].X, out[0].Y, out[0].Z}, []float64{0, 0, 0})

	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := l.Point(t)
		tBack := l.GetT(p)
		chk.Scalar(tst, "getT(point(t))", 1e-6, tBack, t)
	}
}

func Test_line02_plane_checks(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test line02")

	onXY := NewLine(gmath.NewVec3(0, 0, 0), gmath.NewVec3(5, 5, 0), -1)
	if !onXY.OnXYPlane() {
		tst.Errorf("expected line on XY plane")
	}
	if onXY.OnXZPlane() {
		tst.Errorf("expected line not on XZ plane")
	}
}
