package condtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConditions(t *testing.T) {
	tests := []struct {
		name     string
		tree     *Tree
		expected string
	}{
		{
			name:     "nil tree",
			tree:     nil,
			expected: "No conditions",
		},
		{
			name:     "empty tree",
			tree:     NewTree(),
			expected: "No conditions",
		},
		{
			name: "single condition has no leading connective",
			tree: &Tree{InternalLogic: LogicOr, Items: []Node{
				&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			}},
			expected: `role = "router"`,
		},
		{
			name: "two conditions joined by the root connective",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				&Condition{ID: "c2", Field: "name", Operator: "contains", Value: "edge"},
			}},
			expected: `role = "router" AND name contains "edge"`,
		},
		{
			name: "or connective",
			tree: &Tree{InternalLogic: LogicOr, Items: []Node{
				&Condition{ID: "c1", Field: "location", Operator: "equals", Value: "fra1"},
				&Condition{ID: "c2", Field: "location", Operator: "equals", Value: "ams1"},
			}},
			expected: `location = "fra1" OR location = "ams1"`,
		},
		{
			name: "unknown operator renders verbatim",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "name", Operator: "regex_match", Value: "^edge-"},
			}},
			expected: `name regex_match "^edge-"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.tree))
		})
	}
}

func TestRenderOperatorSymbols(t *testing.T) {
	tests := []struct {
		operator string
		expected string
	}{
		{operator: "equals", expected: `name = "x"`},
		{operator: "not_equals", expected: `name != "x"`},
		{operator: "contains", expected: `name contains "x"`},
		{operator: "not_contains", expected: `name not contains "x"`},
		{operator: "starts_with", expected: `name starts with "x"`},
		{operator: "ends_with", expected: `name ends with "x"`},
		{operator: "greater_than", expected: `name > "x"`},
		{operator: "less_than", expected: `name < "x"`},
		{operator: "is_empty", expected: `name is empty "x"`},
		{operator: "is_not_empty", expected: `name is not empty "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.operator, func(t *testing.T) {
			tree := &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "name", Operator: tt.operator, Value: "x"},
			}}
			assert.Equal(t, tt.expected, Render(tree))
		})
	}
}

func TestRenderGroups(t *testing.T) {
	tests := []struct {
		name     string
		tree     *Tree
		expected string
	}{
		{
			name: "group carries its connective to the previous sibling",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				&Group{ID: "g1", Logic: LogicOr, InternalLogic: LogicAnd, Items: []Node{
					&Condition{ID: "c2", Field: "platform", Operator: "equals", Value: "ios"},
					&Condition{ID: "c3", Field: "platform", Operator: "equals", Value: "nxos"},
				}},
			}},
			expected: `role = "router" OR (platform = "ios" AND platform = "nxos")`,
		},
		{
			name: "negated group",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				&Group{ID: "g1", Logic: LogicNot, InternalLogic: LogicAnd, Items: []Node{
					&Condition{ID: "c2", Field: "status", Operator: "equals", Value: "offline"},
				}},
			}},
			expected: `role = "router" NOT (status = "offline")`,
		},
		{
			name: "first group takes no prefix and later parts no double connective",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Group{ID: "g1", Logic: LogicAnd, InternalLogic: LogicOr, Items: []Node{
					&Condition{ID: "c1", Field: "location", Operator: "equals", Value: "fra1"},
					&Condition{ID: "c2", Field: "location", Operator: "equals", Value: "ams1"},
				}},
				&Condition{ID: "c3", Field: "role", Operator: "equals", Value: "router"},
			}},
			expected: `(location = "fra1" OR location = "ams1") AND role = "router"`,
		},
		{
			name: "adjacent groups connect through their own logic only",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Group{ID: "g1", Logic: LogicAnd, InternalLogic: LogicAnd, Items: []Node{
					&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				}},
				&Group{ID: "g2", Logic: LogicOr, InternalLogic: LogicAnd, Items: []Node{
					&Condition{ID: "c2", Field: "role", Operator: "equals", Value: "switch"},
				}},
			}},
			expected: `(role = "router") OR (role = "switch")`,
		},
		{
			name: "lone group keeps no leading connective",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Group{ID: "g1", Logic: LogicNot, InternalLogic: LogicAnd, Items: []Node{
					&Condition{ID: "c1", Field: "status", Operator: "equals", Value: "offline"},
				}},
			}},
			expected: `(status = "offline")`,
		},
		{
			name: "empty group renders its placeholder",
			tree: &Tree{InternalLogic: LogicAnd, Items: []Node{
				&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				&Group{ID: "g1", Logic: LogicAnd, InternalLogic: LogicAnd, Items: []Node{}},
			}},
			expected: `role = "router" AND (No conditions)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.tree))
		})
	}
}

func TestRenderGroup(t *testing.T) {
	g := &Group{ID: "g1", Logic: LogicNot, InternalLogic: LogicOr, Items: []Node{
		&Condition{ID: "c1", Field: "location", Operator: "equals", Value: "fra1"},
		&Condition{ID: "c2", Field: "location", Operator: "equals", Value: "ams1"},
	}}

	// The group's own connective and parentheses belong to its parent.
	assert.Equal(t, `location = "fra1" OR location = "ams1"`, RenderGroup(g))
	assert.Equal(t, "No conditions", RenderGroup(nil))
	assert.Equal(t, "No conditions", RenderGroup(&Group{ID: "g2"}))
}
