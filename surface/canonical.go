// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Canonical is implemented by every surface variant in its own local
// frame; CSSurface lofts a Canonical into world space via a CoordSys.
type Canonical interface {
	PointCanonical(u, v float64) gmath.Vec3
	NormalCanonical(u, v float64) gmath.Vec3
	UVCanonical(p gmath.Vec3) gmath.Vec2

	UDomain() curve.Domain
	VDomain() curve.Domain

	IsPeriodicU() bool
	IsPeriodicV() bool
	IsLinearU() bool
	IsLinearV() bool

	// ScaledCopy returns a copy of the canonical shape uniformly scaled
	// by scale, used when CSSurface.Transformed needs to rescale a
	// canonical shape (e.g. a sphere radius) rather than merely
	// re-lofting its frame. Each variant scales the lengths it carries
	// (radii, generatrix or rail curves, length-valued domains); angles
	// such as a cone's half-angle are left as they are.
	ScaledCopy(scale float64) Canonical
}

// CSSurface lofts a Canonical shape into world space through a CoordSys,
// implementing the full Surface interface by delegating point/normal/uv
// evaluation to the canonical variant composed with CS.ToXfm/FromXfm.
type CSSurface struct {
	CS       gmath.CoordSys
	Canon    Canonical
	contours []curve.Contour
	flags    Flags
}

// NewCSSurface builds a CSSurface from a canonical shape, its loft frame
// and bounding contours.
func NewCSSurface(cs gmath.CoordSys, canon Canonical, contours []curve.Contour, flags Flags) *CSSurface {
	cp := make([]curve.Contour, len(contours))
	copy(cp, contours)
	return &CSSurface{CS: cs, Canon: canon, contours: cp, flags: flags}
}

func (s *CSSurface) Point(u, v float64) gmath.Vec3 {
	return s.CS.ToWorld(s.Canon.PointCanonical(u, v))
}

func (s *CSSurface) Normal(u, v float64) gmath.Vec3 {
	n := s.CS.ToXfm().TransformDir(s.Canon.NormalCanonical(u, v))
	if s.flags.FlipNormal {
		return n.Neg()
	}
	return n
}

func (s *CSSurface) UV(p gmath.Vec3) gmath.Vec2 {
	local := s.CS.ToLocal(p)
	return s.Canon.UVCanonical(local)
}

func (s *CSSurface) UDomain() curve.Domain { return s.Canon.UDomain() }
func (s *CSSurface) VDomain() curve.Domain { return s.Canon.VDomain() }

func (s *CSSurface) Contours() []curve.Contour {
	cp := make([]curve.Contour, len(s.contours))
	copy(cp, s.contours)
	return cp
}

func (s *CSSurface) IsPeriodicU() bool { return s.Canon.IsPeriodicU() }
func (s *CSSurface) IsPeriodicV() bool { return s.Canon.IsPeriodicV() }
func (s *CSSurface) IsLinearU() bool   { return s.Canon.IsLinearU() }
func (s *CSSurface) IsLinearV() bool   { return s.Canon.IsLinearV() }

func (s *CSSurface) FlipNormal() bool  { return s.flags.FlipNormal }
func (s *CSSurface) Translucent() bool { return s.flags.Translucent }
func (s *CSSurface) Selected() bool    { return s.flags.Selected }

// Transformed returns a copy of the surface loft-transformed by m. Since
// m may carry non-uniform scale or shear, the frame axes are
// re-orthonormalized (as curve.Arc/Ellipse do) and any isotropic scale
// factor is passed through to the canonical shape via ScaledCopy so a
// sphere's radius (say) grows with a uniform scale instead of silently
// staying fixed.
func (s *CSSurface) Transformed(m gmath.Mat4) Surface {
	origin := m.TransformPoint(s.CS.Origin)
	x := m.TransformDir(s.CS.X)
	y := m.TransformDir(s.CS.Y)
	scale := x.Length()
	cs, err := gmath.NewCoordSys(origin, x, y)
	if err != nil {
		cs = s.CS
		scale = 1
	}
	return &CSSurface{CS: cs, Canon: s.Canon.ScaledCopy(scale), contours: s.contours, flags: s.flags}
}
