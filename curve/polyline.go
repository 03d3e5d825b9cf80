// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// Polyline is an immutable point sequence with domain [0, n-1]
type Polyline struct {
	Pts    []gmath.Vec3
	pairID int
}

// NewPolyline builds a Polyline from at least two points
func NewPolyline(pts []gmath.Vec3, pairID int) *Polyline {
	cp := make([]gmath.Vec3, len(pts))
	copy(cp, pts)
	return &Polyline{Pts: cp, pairID: pairID}
}

// Domain returns [0, n-1]
func (p *Polyline) Domain() Domain {
	return Domain{0, float64(len(p.Pts) - 1)}
}

// PairID returns the paired-edge identifier
func (p *Polyline) PairID() int { return p.pairID }

// segment returns the segment index i and its local fraction s such that
// t = i + s, clamped to the last segment
func (p *Polyline) segment(t float64) (i int, s float64) {
	t = p.Domain().Clamp(t)
	n := len(p.Pts)
	i = int(t)
	if i >= n-1 {
		i = n - 2
		s = t - float64(i)
		if s > 1 {
			s = 1
		}
		return
	}
	s = t - float64(i)
	return
}

// Point interpolates linearly within the segment containing t
func (p *Polyline) Point(t float64) gmath.Vec3 {
	i, s := p.segment(t)
	return p.Pts[i].Lerp(p.Pts[i+1], s)
}

// Tangent returns the direction of the segment containing t
func (p *Polyline) Tangent(t float64) gmath.Vec3 {
	i, _ := p.segment(t)
	return p.Pts[i+1].Sub(p.Pts[i])
}

// GetT performs a nearest-segment search followed by local-parameter
// projection
func (p *Polyline) GetT(q gmath.Vec3) float64 {
	bestDist := math.MaxFloat64
	bestI, bestS := 0, 0.0
	for i := 0; i < len(p.Pts)-1; i++ {
		a, b := p.Pts[i], p.Pts[i+1]
		ab := b.Sub(a)
		l2 := ab.LengthSq()
		s := 0.0
		if l2 > 1e-300 {
			s = q.Sub(a).Dot(ab) / l2
			if s < 0 {
				s = 0
			} else if s > 1 {
				s = 1
			}
		}
		proj := a.Add(ab.Scale(s))
		d := q.DistSq(proj)
		if d < bestDist {
			bestDist = d
			bestI, bestS = i, s
		}
	}
	return float64(bestI) + bestS
}

// Discretize appends every vertex except the last (the end is the start
// of the next curve in the contour)
func (p *Polyline) Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3 {
	return append(out, p.Pts[:len(p.Pts)-1]...)
}

// Transformed returns a copy of the polyline transformed by m
func (p *Polyline) Transformed(m gmath.Mat4) Curve {
	pts := make([]gmath.Vec3, len(p.Pts))
	for i, v := range p.Pts {
		pts[i] = m.TransformPoint(v)
	}
	return &Polyline{Pts: pts, pairID: p.pairID}
}

// Start returns the first point
func (p *Polyline) Start() gmath.Vec3 { return p.Pts[0] }

// End returns the last point
func (p *Polyline) End() gmath.Vec3 { return p.Pts[len(p.Pts)-1] }

// OnXYPlane reports whether every vertex has |z| <= gmath.Delta
func (p *Polyline) OnXYPlane() bool {
	for _, v := range p.Pts {
		if v.Z < -gmath.Delta || v.Z > gmath.Delta {
			return false
		}
	}
	return true
}

// OnXZPlane reports whether every vertex has |y| <= gmath.Delta
func (p *Polyline) OnXZPlane() bool {
	for _, v := range p.Pts {
		if v.Y < -gmath.Delta || v.Y > gmath.Delta {
			return false
		}
	}
	return true
}
