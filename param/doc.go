// SPDX-License-Identifier: EPL-2.0

// Package param describes effect parameters as ordered field descriptors.
//
// A host persists and automates effect settings by name. Each effect exposes
// a descriptor list declaring name, kind, default and bounds per field; the
// host validates incoming values against the descriptors before handing a
// settings struct to the effect:
//
//	fields := dtmf.Params()
//	for _, f := range fields {
//	    fmt.Println(f.Name, f.Kind)
//	}
//
// Numeric values are clamped to [Min, Max]; string values are checked
// against an allowed alphabet when one is declared. The engine itself only
// ever sees validated settings structs.
package param
