package condtree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyTree(t *testing.T) {
	ops := Compile(NewTree())
	assert.NotNil(t, ops)
	assert.Empty(t, ops)

	assert.Empty(t, Compile(nil))
}

func TestCompileSingleCondition(t *testing.T) {
	// A lone condition compiles to exactly one operation holding exactly its
	// triple, whatever the root connective is.
	for _, internal := range []Logic{LogicAnd, LogicOr} {
		t.Run(string(internal), func(t *testing.T) {
			tree := &Tree{
				InternalLogic: internal,
				Items: []Node{
					&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
				},
			}

			ops := Compile(tree)
			require.Len(t, ops, 1)
			assert.Equal(t, []LogicalCondition{
				{Field: "role", Operator: "equals", Value: "router"},
			}, ops[0].Conditions)
			assert.Empty(t, ops[0].NestedOperations)
			assert.NotNil(t, ops[0].NestedOperations)
		})
	}
}

func TestCompileInlinesSiblingConditions(t *testing.T) {
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			&Condition{ID: "c2", Field: "cf_site", Operator: "equals", Value: "prod"},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 1)

	data, err := json.Marshal(ops)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{
			"operation_type": "AND",
			"conditions": [
				{"field": "role", "operator": "equals", "value": "router"},
				{"field": "cf_site", "operator": "equals", "value": "prod"}
			],
			"nested_operations": []
		}
	]`, string(data))
}

func TestCompileNotGroupBecomesTrailingExclusion(t *testing.T) {
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			&Condition{ID: "c2", Field: "platform", Operator: "equals", Value: "ios"},
			&Group{
				ID:            "g1",
				Logic:         LogicNot,
				InternalLogic: LogicAnd,
				Items: []Node{
					&Condition{ID: "c3", Field: "status", Operator: "equals", Value: "offline"},
				},
			},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 2)

	assert.Equal(t, LogicAnd, ops[0].OperationType)
	assert.Equal(t, []LogicalCondition{
		{Field: "role", Operator: "equals", Value: "router"},
		{Field: "platform", Operator: "equals", Value: "ios"},
	}, ops[0].Conditions)
	assert.Empty(t, ops[0].NestedOperations)

	assert.Equal(t, LogicNot, ops[1].OperationType)
	assert.Equal(t, []LogicalCondition{
		{Field: "status", Operator: "equals", Value: "offline"},
	}, ops[1].Conditions)
	assert.Equal(t, LogicNot, ops[1].ParentLogic)
}

func TestCompileSingleGroupStandsAlone(t *testing.T) {
	// One converted group needs no extra wrapper; its own connective wins.
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Group{
				ID:            "g1",
				Logic:         LogicAnd,
				InternalLogic: LogicOr,
				Items: []Node{
					&Condition{ID: "c1", Field: "location", Operator: "equals", Value: "fra1"},
					&Condition{ID: "c2", Field: "location", Operator: "equals", Value: "ams1"},
				},
			},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 1)
	assert.Equal(t, LogicOr, ops[0].OperationType)
	assert.Len(t, ops[0].Conditions, 2)
	assert.Empty(t, ops[0].NestedOperations)
}

func TestCompileMixedGroupsInlineOrNest(t *testing.T) {
	// A sibling group that reduces to one bare condition is inlined; a group
	// with real structure stays nested.
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			&Group{
				ID:            "g1",
				Logic:         LogicAnd,
				InternalLogic: LogicOr,
				Items: []Node{
					&Condition{ID: "c2", Field: "manufacturer", Operator: "equals", Value: "arista"},
				},
			},
			&Group{
				ID:            "g2",
				Logic:         LogicAnd,
				InternalLogic: LogicOr,
				Items: []Node{
					&Condition{ID: "c3", Field: "location", Operator: "equals", Value: "fra1"},
					&Condition{ID: "c4", Field: "location", Operator: "equals", Value: "ams1"},
				},
			},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 1)

	data, err := json.Marshal(ops[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operation_type": "AND",
		"conditions": [
			{"field": "role", "operator": "equals", "value": "router"},
			{"field": "manufacturer", "operator": "equals", "value": "arista"}
		],
		"nested_operations": [
			{
				"operation_type": "OR",
				"conditions": [
					{"field": "location", "operator": "equals", "value": "fra1"},
					{"field": "location", "operator": "equals", "value": "ams1"}
				],
				"nested_operations": []
			}
		]
	}`, string(data))
}

func TestCompileDeepNotBubblesToTopLevel(t *testing.T) {
	// The executor applies NOT semantics only to top-level operations, so a
	// negated group buried inside a positive group must surface.
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			&Group{
				ID:            "g1",
				Logic:         LogicAnd,
				InternalLogic: LogicAnd,
				Items: []Node{
					&Condition{ID: "c2", Field: "platform", Operator: "equals", Value: "ios"},
					&Group{
						ID:            "g2",
						Logic:         LogicNot,
						InternalLogic: LogicAnd,
						Items: []Node{
							&Condition{ID: "c3", Field: "status", Operator: "equals", Value: "offline"},
						},
					},
				},
			},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 2)

	// The positive logic collapses into one flat AND: both the top-level
	// condition and the group's surviving single condition inline.
	assert.Equal(t, LogicAnd, ops[0].OperationType)
	assert.Equal(t, []LogicalCondition{
		{Field: "role", Operator: "equals", Value: "router"},
		{Field: "platform", Operator: "equals", Value: "ios"},
	}, ops[0].Conditions)

	assert.Equal(t, LogicNot, ops[1].OperationType)
	assert.Equal(t, []LogicalCondition{
		{Field: "status", Operator: "equals", Value: "offline"},
	}, ops[1].Conditions)
}

func TestCompileSkipsEmptyGroups(t *testing.T) {
	tree := &Tree{
		InternalLogic: LogicOr,
		Items: []Node{
			&Condition{ID: "c1", Field: "role", Operator: "equals", Value: "router"},
			&Group{ID: "g1", Logic: LogicOr, InternalLogic: LogicAnd, Items: []Node{}},
			&Group{ID: "g2", Logic: LogicNot, InternalLogic: LogicAnd, Items: []Node{}},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 1)
	assert.Len(t, ops[0].Conditions, 1)
	assert.Empty(t, ops[0].NestedOperations)
}

func TestCompileOnlyNotGroup(t *testing.T) {
	tree := &Tree{
		InternalLogic: LogicAnd,
		Items: []Node{
			&Group{
				ID:            "g1",
				Logic:         LogicNot,
				InternalLogic: LogicAnd,
				Items: []Node{
					&Condition{ID: "c1", Field: "status", Operator: "equals", Value: "offline"},
				},
			},
		},
	}

	ops := Compile(tree)
	require.Len(t, ops, 1)
	assert.Equal(t, LogicNot, ops[0].OperationType)
}

func TestCompileUpgradedFlatScenario(t *testing.T) {
	flat := []FlatCondition{
		{Field: "role", Operator: "equals", Value: "router", Logic: LogicAnd},
		{Field: "cf_site", Operator: "equals", Value: "prod", Logic: LogicAnd},
	}

	tree := FlatToTree(flat)
	require.Equal(t, LogicAnd, tree.InternalLogic)
	require.Len(t, tree.Items, 2)

	ops := Compile(tree)
	data, err := json.Marshal(ops)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{
			"operation_type": "AND",
			"conditions": [
				{"field": "role", "operator": "equals", "value": "router"},
				{"field": "cf_site", "operator": "equals", "value": "prod"}
			],
			"nested_operations": []
		}
	]`, string(data))
}
