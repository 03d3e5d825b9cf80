// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surface implements the parametric surface model: plane,
// cylinder, cone, sphere, torus, spun, swept, ruled and NURBS variants,
// each defined canonically and lofted into world space by a CoordSys.
package surface

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Surface is the common interface implemented by every surface variant.
type Surface interface {
	// Point evaluates the surface at (u,v). Only the NURBS variant clamps
	// (u,v) to its domain; the others evaluate any (u,v) as given
	Point(u, v float64) gmath.Vec3

	// Normal returns the (not necessarily unit) surface normal at (u,v)
	Normal(u, v float64) gmath.Vec3

	// UV recovers (u,v) whose Point is closest to p
	UV(p gmath.Vec3) gmath.Vec2

	// UDomain and VDomain return the surface's rectangular parameter ranges
	UDomain() curve.Domain
	VDomain() curve.Domain

	// Contours returns the ordered bounding contours trimming the surface
	Contours() []curve.Contour

	// Transformed returns a copy of the surface transformed by m
	Transformed(m gmath.Mat4) Surface

	// IsPeriodicU and IsPeriodicV report whether the u/v parameter wraps
	// around (the corresponding domain spans exactly 2*pi and the
	// surface closes on itself)
	IsPeriodicU() bool
	IsPeriodicV() bool

	// IsLinearU and IsLinearV report whether Point varies linearly along
	// u/v holding the other parameter fixed, consulted by surfinv to
	// decide between 1 and 4 root tiles along that axis
	IsLinearU() bool
	IsLinearV() bool

	// FlipNormal reports whether Normal should be negated before use
	FlipNormal() bool

	// Translucent and Selected are display/selection flags carried by
	// the surface but not otherwise interpreted by this package
	Translucent() bool
	Selected() bool
}

// Flags bundles the boolean state every surface variant carries
// alongside its geometry: flip_normal, translucent, selected.
type Flags struct {
	FlipNormal  bool
	Translucent bool
	Selected    bool
}
