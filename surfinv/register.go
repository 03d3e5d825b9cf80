// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfinv

import (
	"sync"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/surface"
)

func init() {
	surface.RegisterTileInverter(invert)
}

// invert is installed as the package-level tile-inversion callback. It
// builds a Tree for c the first time it is queried and stores it in
// the canonical variant's opaque tree slot, so repeated UVCanonical
// calls on the same surface reuse the tree instead of rebuilding it.
func invert(c surface.Canonical, p gmath.Vec3) gmath.Vec2 {
	slotter, ok := c.(treeSlotter)
	if !ok {
		// no invertState embedded: build and discard a one-shot tree
		return NewTree(c, nil, nil).Query(p)
	}
	slot := slotter.TreeSlot()
	slotter.TreeOnce().Do(func() {
		*slot = NewTree(c, nil, nil)
	})
	tree := (*slot).(*Tree)
	return tree.Query(p)
}

// treeSlotter is satisfied by any Canonical variant that embeds
// surface.invertState, exposing its lazily-built inversion tree slot.
type treeSlotter interface {
	TreeSlot() *interface{}
	TreeOnce() *sync.Once
}
