// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec301(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test vec301")

	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	chk.Scalar(tst, "a.b", 1e-15, a.Dot(b), 32)
	c := a.Cross(b)
	chk.Vector(tst, "axb", 1e-15, []float64{c.X, c.Y, c.Z}, []float64{-3, 6, -3})
	chk.Scalar(tst, "|a|", 1e-15, NewVec3(3, 4, 0).Length(), 5)

	u := NewVec3(3, 4, 0).Normalize()
	chk.Scalar(tst, "|unit(a)|", 1e-15, u.Length(), 1)

	z := Vec3{}.Normalize()
	chk.Scalar(tst, "unit(0)=0", 1e-15, z.Length(), 0)
}

func Test_vec302(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test vec302")

	a := NewVec3(0, 0, 0)
	b := NewVec3(10, 0, 0)
	mid := a.Lerp(b, 0.5)
	chk.Vector(tst, "lerp", 1e-15, []float64{mid.X, mid.Y, mid.Z}, []float64{5, 0, 0})

	chk.Ints(tst, "argmax(0,5,1)", []int{NewVec3(0, 5, 1).MaxAbsAxis()}, []int{1})
	chk.Ints(tst, "argmax(9,5,1)", []int{NewVec3(9, 5, 1).MaxAbsAxis()}, []int{0})
	chk.Ints(tst, "argmax(0,5,9)", []int{NewVec3(0, 5, 9).MaxAbsAxis()}, []int{2})
}
