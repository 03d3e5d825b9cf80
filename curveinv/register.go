// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveinv

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

func init() {
	curve.RegisterInverter(invert)
}

// invert is installed as the package-level NURBS inversion callback. It
// builds a Tree for n the first time it is queried and stores it in n's
// opaque tree slot, so repeated GetT calls on the same curve reuse the
// tree instead of rebuilding it.
func invert(n *curve.NurbsCurve, p gmath.Vec3) float64 {
	slot := n.TreeSlot()
	n.TreeOnce().Do(func() {
		*slot = NewTree(n, nil, nil)
	})
	tree := (*slot).(*Tree)
	t, _ := tree.Query(p)
	return t
}
