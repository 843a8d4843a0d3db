// Package condtree implements the logical condition tree behind device
// inventory queries: nested field/operator/value conditions combined with
// AND / OR / NOT, arbitrarily grouped.
//
// The tree is built interactively through an Editor (or programmatically
// through a Builder), compiled into the executor's nested operation list
// with Compile, rendered for humans with Render, and exchanged with older
// call sites through the flat-list converters FlatToTree and TreeToFlat.
//
// All mutation is structural copy-on-write: an operation rebuilds the path
// from the root to the changed node and shares every untouched subtree, so
// a *Tree obtained earlier keeps observing a stable snapshot. Nothing in
// this package performs I/O or validates field and operator tokens; both
// are opaque strings supplied by the field catalog.
//
// Example usage:
//
//	ed, _ := condtree.NewEditor()
//	ed.AddCondition("role", "equals", "router")
//
//	ops := condtree.Compile(ed.Tree())   // executor input
//	text := condtree.Render(ed.Tree())   // `role = "router"`
package condtree
