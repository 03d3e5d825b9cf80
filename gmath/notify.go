// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import "github.com/cpmech/gosl/io"

// Notifier receives introspection events from the adaptive trees and the
// mesher (tile/segment subdivisions, neighbor-walk retries, refinement
// splits). It replaces the source's UI-subject notification streams
// with a plain callback; passing nil is the same as NopNotifier.
type Notifier func(event string, args ...interface{})

// NopNotifier discards every event; it is the default used whenever a
// caller passes a nil Notifier
func NopNotifier(event string, args ...interface{}) {}

// VerboseNotifier prints every event using gosl/io's colored printers
func VerboseNotifier(event string, args ...interface{}) {
	switch event {
	case "subdivide", "split":
		io.Pfyel("%-10s %v\n", event, args)
	case "overrun", "retry":
		io.Pforan("%-10s %v\n", event, args)
	case "leaf", "emit":
		io.Pfcyan("%-10s %v\n", event, args)
	default:
		io.Pf("%-10s %v\n", event, args)
	}
}

// notify calls n if non-nil, else is a no-op; every package in this
// module should call through this helper rather than invoking n directly
func notify(n Notifier, event string, args ...interface{}) {
	if n != nil {
		n(event, args...)
	}
}

// Notify is the exported form of notify, used by sibling packages
// (curveinv, surfinv, mesher, mesh) that cannot call the unexported
// helper directly
func Notify(n Notifier, event string, args ...interface{}) {
	notify(n, event, args...)
}
