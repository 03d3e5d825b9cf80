// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gmath implements the shared vector/matrix/tolerance primitives
// used throughout the curve, surface, mesh and collision packages
package gmath

import "math"

// Vec3 is a 3D point or direction
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a Vec3 from three components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a+b
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a*s
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a.b
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product axb
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// LengthSq returns the squared length of a
func (a Vec3) LengthSq() float64 {
	return a.Dot(a)
}

// Length returns the length of a
func (a Vec3) Length() float64 {
	return math.Sqrt(a.LengthSq())
}

// DistSq returns the squared distance between a and b
func (a Vec3) DistSq(b Vec3) float64 {
	return a.Sub(b).LengthSq()
}

// Dist returns the distance between a and b
func (a Vec3) Dist(b Vec3) float64 {
	return math.Sqrt(a.DistSq(b))
}

// Normalize returns a unit vector along a; returns the zero vector if a is
// (numerically) zero-length rather than dividing by zero
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < Epsilon {
		return Vec3{}
	}
	return a.Scale(1.0 / l)
}

// Lerp returns the linear interpolation (1-t)a + tb
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		(1-t)*a.X + t*b.X,
		(1-t)*a.Y + t*b.Y,
		(1-t)*a.Z + t*b.Z,
	}
}

// Neg returns -a
func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Abs returns the component-wise absolute value of a
func (a Vec3) Abs() Vec3 {
	return Vec3{math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)}
}

// Component returns the i-th component (0=x, 1=y, 2=z)
func (a Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// MaxAbsAxis returns the index (0,1,2) of the component with the largest
// absolute value, used to pick a dominant projection axis
func (a Vec3) MaxAbsAxis() int {
	ax, ay, az := math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

// ToSlice returns the components as a []float64, useful when handing
// values to gosl/la routines that operate on plain slices
func (a Vec3) ToSlice() []float64 {
	return []float64{a.X, a.Y, a.Z}
}

// Vec2 is a 2D point, typically a (u,v) parameter pair or a projected
// 3D point
type Vec2 struct {
	X, Y float64
}

// NewVec2 builds a Vec2 from two components
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a+b
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Scale returns a*s
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Dot returns the dot product a.b
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product (a.x,a.y,0)x(b.x,b.y,0)
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Length returns the length of a
func (a Vec2) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Lerp returns the linear interpolation (1-t)a + tb
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{(1-t)*a.X + t*b.X, (1-t)*a.Y + t*b.Y}
}
