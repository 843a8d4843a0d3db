package inventory

import (
	stdjson "encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Version tags the stored conditions wrapper and the export envelope. Stores
// written before the tree format carry no marker at all; see
// DecodeConditions.
const Version = 2

var (
	// ErrExportVersion is returned when an export envelope carries a
	// version other than Version.
	ErrExportVersion = errors.New("inventory: unsupported export version")
	// ErrExportTree indicates an export envelope without a condition tree.
	ErrExportTree = errors.New("inventory: export envelope has no condition tree")
	// ErrExportName indicates export metadata without a name.
	ErrExportName = errors.New("inventory: export metadata has no name")
)

// versionedConditions is the first element of a tree-encoded conditions
// array.
type versionedConditions struct {
	Version int                `json:"version"`
	Tree    stdjson.RawMessage `json:"tree"`
}

// DecodeConditions reconstructs a tree from a stored conditions array.
//
// Two encodings exist side by side in older stores. When the first element
// is a {"version":2,"tree":{...}} wrapper the tree is decoded from it and
// the remaining elements are ignored. Anything else is the legacy flat
// encoding: every element is read as a field/operator/value/logic record and
// upgraded through condtree.FlatToTree, skipping elements that are not JSON
// objects. An empty or nil array yields an empty tree.
func DecodeConditions(conditions []stdjson.RawMessage) (*condtree.Tree, error) {
	if len(conditions) == 0 {
		return condtree.NewTree(), nil
	}

	var wrapper versionedConditions
	if err := json.Unmarshal(conditions[0], &wrapper); err == nil && wrapper.Version == Version {
		if len(wrapper.Tree) == 0 || string(wrapper.Tree) == "null" {
			return condtree.NewTree(), nil
		}
		tree, err := condtree.ParseTree(wrapper.Tree)
		if err != nil {
			return nil, fmt.Errorf("inventory: decode stored tree: %w", err)
		}
		return tree, nil
	}

	flat := make([]condtree.FlatCondition, 0, len(conditions))
	for _, raw := range conditions {
		if !isObject(raw) {
			continue
		}
		var cond condtree.FlatCondition
		if err := json.Unmarshal(raw, &cond); err != nil {
			continue
		}
		flat = append(flat, cond)
	}
	return condtree.FlatToTree(flat), nil
}

// isObject reports whether a raw element is a JSON object. Legacy arrays are
// decoded element by element and anything else (null, numbers, strings) is
// skipped rather than read as an empty record.
func isObject(raw stdjson.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b == '{'
	}
	return false
}

// EncodeConditions wraps a tree in the one-element version-2 conditions
// array the store persists. A nil tree encodes as an empty one.
func EncodeConditions(tree *condtree.Tree) ([]stdjson.RawMessage, error) {
	if tree == nil {
		tree = condtree.NewTree()
	}
	data, err := json.Marshal(struct {
		Version int            `json:"version"`
		Tree    *condtree.Tree `json:"tree"`
	}{Version: Version, Tree: tree})
	if err != nil {
		return nil, fmt.Errorf("inventory: encode conditions: %w", err)
	}
	return []stdjson.RawMessage{data}, nil
}
