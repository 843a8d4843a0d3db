// Package inventory handles the storage and exchange boundary around
// condition trees: the versioned encoding saved expressions persist their
// conditions in, the export envelope files travel as, and the legacy
// flat-to-operations path older records execute through.
//
// Stored conditions arrays come in two encodings. Tree-encoded records hold
// a single {"version":2,"tree":{...}} wrapper; everything else is read as
// the legacy flat list and upgraded on decode. DecodeConditions hides the
// distinction:
//
//	var saved inventory.SavedExpression
//	_ = json.Unmarshal(data, &saved)
//
//	tree, err := saved.Tree()             // either encoding
//	env := inventory.BuildExport(&saved, tree, "cli", time.Now())
package inventory
