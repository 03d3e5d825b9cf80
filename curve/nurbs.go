// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"sync"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// NurbsCurve is an immutable rational/non-rational B-spline curve: degree
// p = len(Knots) - len(Ctrl) - 1, rational if any Weights[i] != 1.
// Point evaluation uses de Boor basis-function evaluation with a pooled
// thread-confined scratch buffer (gmath.GetScratch/PutScratch).
type NurbsCurve struct {
	Ctrl     []gmath.Vec3
	Weights  []float64 // empty means every weight is 1 (non-rational)
	Knots    []float64
	degree   int
	domain   Domain
	pairID   int
	treeOnce sync.Once
	tree     interface{} // curveinv.Tree, built by package curveinv on the first GetT
}

// NewNurbsCurve validates and builds a NurbsCurve: knots must be
// non-decreasing and have length len(ctrl)+p+1; weights must be empty
// or the same length as ctrl.
func NewNurbsCurve(ctrl []gmath.Vec3, knots []float64, weights []float64, pairID int) (*NurbsCurve, error) {
	p := len(knots) - len(ctrl) - 1
	if p < 1 {
		return nil, chk.Err("curve: nurbs degree must be >= 1 (len(ctrl)=%d, len(knots)=%d)", len(ctrl), len(knots))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, chk.Err("curve: nurbs knots must be non-decreasing (knots[%d]=%v < knots[%d]=%v)", i, knots[i], i-1, knots[i-1])
		}
	}
	if len(weights) != 0 && len(weights) != len(ctrl) {
		return nil, chk.Err("curve: nurbs weights must be empty or len(ctrl)=%d, got %d", len(ctrl), len(weights))
	}
	lo, hi := knots[p], knots[len(knots)-1-p]
	dom, err := NewDomain(lo, hi)
	if err != nil {
		return nil, err
	}
	c := make([]gmath.Vec3, len(ctrl))
	copy(c, ctrl)
	k := make([]float64, len(knots))
	copy(k, knots)
	var w []float64
	if len(weights) > 0 {
		w = make([]float64, len(weights))
		copy(w, weights)
	}
	return &NurbsCurve{Ctrl: c, Weights: w, Knots: k, degree: p, domain: dom, pairID: pairID}, nil
}

// Domain returns the curve's valid parameter interval
func (n *NurbsCurve) Domain() Domain { return n.domain }

// PairID returns the paired-edge identifier
func (n *NurbsCurve) PairID() int { return n.pairID }

// Degree returns p = len(Knots) - len(Ctrl) - 1
func (n *NurbsCurve) Degree() int { return n.degree }

// IsRational reports whether any control point carries a weight != 1
func (n *NurbsCurve) IsRational() bool {
	for _, w := range n.Weights {
		if w != 1 {
			return true
		}
	}
	return false
}

func (n *NurbsCurve) weight(i int) float64 {
	if len(n.Weights) == 0 {
		return 1
	}
	return n.Weights[i]
}

// findSpan locates the knot span i such that knots[i] <= u < knots[i+1]
// (Piegl & Tiller algorithm A2.1). It does not clamp u: any u at or past
// knots[m-p] maps to the last non-empty span
func (n *NurbsCurve) findSpan(u float64) int {
	p := n.degree
	m := len(n.Knots) - 1
	if u >= n.Knots[m-p] {
		return m - p - 1
	}
	low, high := p, m-p
	mid := (low + high) / 2
	for u < n.Knots[mid] || u >= n.Knots[mid+1] {
		if u < n.Knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// basisFuns fills sc.Basis[0..p] with the non-zero B-spline basis values
// at u within span (Piegl & Tiller algorithm A2.2), using sc's pooled
// Left/Right/Ndu scratch arrays
func (n *NurbsCurve) basisFuns(span int, u float64, sc *gmath.Scratch) {
	p := n.degree
	sc.Ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		sc.Left[j] = u - n.Knots[span+1-j]
		sc.Right[j] = n.Knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			sc.Ndu[j][r] = sc.Right[r+1] + sc.Left[j-r]
			temp := sc.Ndu[r][j-1] / sc.Ndu[j][r]
			sc.Ndu[r][j] = saved + sc.Right[r+1]*temp
			saved = sc.Left[j-r] * temp
		}
		sc.Ndu[j][j] = saved
	}
	for i := 0; i <= p; i++ {
		sc.Basis[i] = sc.Ndu[i][p]
	}
}

// clampU clamps t to the domain, pulling the exact upper bound in by a
// small epsilon so findSpan never sees u == knots[last]
func (n *NurbsCurve) clampU(t float64) float64 {
	u := n.domain.Clamp(t)
	if u >= n.domain.Hi {
		u = n.domain.Hi - 1e-12*math.Max(1, math.Abs(n.domain.Hi))
	}
	return u
}

// Point evaluates the curve at t using de Boor basis functions and, for
// rational curves, a weighted sum divided by the accumulated weight
func (n *NurbsCurve) Point(t float64) gmath.Vec3 {
	u := n.clampU(t)
	p := n.degree
	span := n.findSpan(u)
	sc := gmath.GetScratch(p + 1)
	defer gmath.PutScratch(sc)
	n.basisFuns(span, u, sc)

	var sum gmath.Vec3
	var wsum float64
	for i := 0; i <= p; i++ {
		ctrlIdx := span - p + i
		w := n.weight(ctrlIdx) * sc.Basis[i]
		sum = sum.Add(n.Ctrl[ctrlIdx].Scale(w))
		wsum += w
	}
	if wsum < 1e-300 {
		return gmath.Vec3{}
	}
	return sum.Scale(1 / wsum)
}

// Tangent returns a numerical central derivative of Point at t. No
// analytic NURBS derivative formula is assumed here; instead this is
// computed with gosl/num.DerivCentral component-wise.
func (n *NurbsCurve) Tangent(t float64) gmath.Vec3 {
	h := 1e-6 * math.Max(1, n.domain.Span())
	fx := func(x float64, args ...interface{}) float64 { return n.Point(x).X }
	fy := func(x float64, args ...interface{}) float64 { return n.Point(x).Y }
	fz := func(x float64, args ...interface{}) float64 { return n.Point(x).Z }
	dx, _ := num.DerivCentral(fx, t, h)
	dy, _ := num.DerivCentral(fy, t, h)
	dz, _ := num.DerivCentral(fz, t, h)
	return gmath.NewVec3(dx, dy, dz)
}

// GetT delegates to the registered curveinv adaptive segment-tree
// inverter (package curveinv registers itself via RegisterInverter to
// avoid an import cycle: curveinv imports curve, not the reverse).
func (n *NurbsCurve) GetT(p gmath.Vec3) float64 {
	if inverter == nil {
		// curveinv was never imported by the program; degrade to the
		// nearest unique-knot sample rather than panicking
		return n.nearestKnotFallback(p)
	}
	return inverter(n, p)
}

func (n *NurbsCurve) nearestKnotFallback(p gmath.Vec3) float64 {
	knots := n.uniqueKnotsInDomain()
	best := knots[0]
	bestDist := n.Point(best).DistSq(p)
	for _, t := range knots[1:] {
		d := n.Point(t).DistSq(p)
		if d < bestDist {
			bestDist, best = d, t
		}
	}
	return best
}

// TreeSlot exposes the lazily-built, thread-confined inversion tree slot
// to package curveinv; it is otherwise opaque (interface{}) to curve.
func (n *NurbsCurve) TreeSlot() *interface{} { return &n.tree }

// TreeOnce exposes the sync.Once guarding first construction of the
// inversion tree slot, so curveinv's lazy-build is safe under concurrent
// first-query from multiple goroutines.
func (n *NurbsCurve) TreeOnce() *sync.Once { return &n.treeOnce }

// uniqueKnotsInDomain returns each distinct knot value lying in
// [domain.Lo, domain.Hi], used both by nearestKnotFallback and by
// Discretize's adaptive stack seeding
func (n *NurbsCurve) uniqueKnotsInDomain() []float64 {
	var out []float64
	for i, k := range n.Knots {
		if k < n.domain.Lo-1e-12 || k > n.domain.Hi+1e-12 {
			continue
		}
		if i > 0 && math.Abs(k-n.Knots[i-1]) < 1e-12 && len(out) > 0 && math.Abs(out[len(out)-1]-k) < 1e-12 {
			continue
		}
		if len(out) == 0 || math.Abs(out[len(out)-1]-k) > 1e-12 {
			out = append(out, k)
		}
	}
	return out
}

type nurbsStackNode struct {
	t     float64
	point gmath.Vec3
	level int
}

const nurbsMaxLevel = 5

// Discretize implements adaptive NURBS discretization: seed a stack
// with one node per unique knot, repeatedly pop adjacent
// pairs and either emit the lower node or subdivide at the midpoint
// (plus quarter-point deviation checks), bounded by nurbsMaxLevel.
func (n *NurbsCurve) Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3 {
	knots := n.uniqueKnotsInDomain()
	stack := make([]nurbsStackNode, 0, len(knots))
	for i := len(knots) - 1; i >= 0; i-- {
		t := knots[i]
		stack = append(stack, nurbsStackNode{t: t, point: n.Point(t), level: 0})
	}
	chordTolSq := chordTol * chordTol

	pop := func() nurbsStackNode {
		last := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return last
	}
	push := func(nd nurbsStackNode) { stack = append(stack, nd) }

	for len(stack) > 0 {
		e1 := pop()
		if len(stack) == 0 {
			out = append(out, e1.point)
			break
		}
		e2 := pop()
		if e1.level >= nurbsMaxLevel {
			out = append(out, e1.point)
			push(e2)
			continue
		}
		a, b := e1.t, e2.t
		mid := (a + b) / 2
		q1 := a + 0.25*(b-a)
		q3 := a + 0.75*(b-a)
		pm, p1, p3 := n.Point(mid), n.Point(q1), n.Point(q3)
		devMid := chordSagittaSq(pm, e1.point, e2.point)
		dev1 := chordSagittaSq(p1, e1.point, e2.point)
		dev3 := chordSagittaSq(p3, e1.point, e2.point)
		turn := turnAngle(e1.point, pm, e2.point)
		if devMid > chordTolSq || dev1 > chordTolSq || dev3 > chordTolSq || turn > maxAngStep {
			push(e2)
			push(nurbsStackNode{t: mid, point: pm, level: e1.level + 1})
			push(nurbsStackNode{t: e1.t, point: e1.point, level: e1.level + 1})
		} else {
			out = append(out, e1.point)
			push(e2)
		}
	}
	return out
}

// turnAngle is a package-local alias for gmath.TurnAngle
func turnAngle(a, b, c gmath.Vec3) float64 {
	return gmath.TurnAngle(a, b, c)
}

// Transformed returns a copy of the curve transformed by m; the adaptive
// inversion tree is not copied since it is keyed to this curve's own
// geometry (a fresh tree will be grown lazily for the transformed copy)
func (n *NurbsCurve) Transformed(m gmath.Mat4) Curve {
	ctrl := make([]gmath.Vec3, len(n.Ctrl))
	for i, c := range n.Ctrl {
		ctrl[i] = m.TransformPoint(c)
	}
	out, _ := NewNurbsCurve(ctrl, n.Knots, n.Weights, n.pairID)
	return out
}

// Start returns Point(Domain.Lo)
func (n *NurbsCurve) Start() gmath.Vec3 { return n.Point(n.domain.Lo) }

// End returns Point(Domain.Hi)
func (n *NurbsCurve) End() gmath.Vec3 { return n.Point(n.domain.Hi) }

// OnXYPlane reports whether every control point has |z| <= gmath.Delta
func (n *NurbsCurve) OnXYPlane() bool {
	for _, c := range n.Ctrl {
		if c.Z < -gmath.Delta || c.Z > gmath.Delta {
			return false
		}
	}
	return true
}

// OnXZPlane reports whether every control point has |y| <= gmath.Delta
func (n *NurbsCurve) OnXZPlane() bool {
	for _, c := range n.Ctrl {
		if c.Y < -gmath.Delta || c.Y > gmath.Delta {
			return false
		}
	}
	return true
}

// inverter is registered by package curveinv's init() to break the
// curve<->curveinv import cycle
var inverter func(c *NurbsCurve, p gmath.Vec3) float64

// RegisterInverter installs the NURBS curve-inversion callback; it is
// called exactly once, from curveinv's init()
func RegisterInverter(f func(c *NurbsCurve, p gmath.Vec3) float64) {
	inverter = f
}
