package inventory

import (
	"strings"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

// FlatToOperations converts a legacy flat condition list straight into the
// executor's operation list, without building a tree first. This is the path
// flat-encoded records take when executed as saved.
//
// Consecutive conditions sharing a connective collapse into one operation; a
// connective change flushes the open group and starts a new one. A NOT
// condition always flushes and becomes its own single-condition NOT
// operation, since the executor applies NOT per operation, not per
// condition. Missing connectives read as AND.
func FlatToOperations(conditions []condtree.FlatCondition) []condtree.LogicalOperation {
	operations := []condtree.LogicalOperation{}
	groupType := condtree.LogicAnd
	var group []condtree.LogicalCondition

	flush := func() {
		if len(group) == 0 {
			return
		}
		operations = append(operations, condtree.LogicalOperation{
			OperationType:    groupType,
			Conditions:       group,
			NestedOperations: []condtree.LogicalOperation{},
		})
		group = nil
	}

	for _, cond := range conditions {
		logic := condtree.Logic(strings.ToUpper(string(cond.Logic)))
		if logic != condtree.LogicOr && logic != condtree.LogicNot {
			logic = condtree.LogicAnd
		}
		triple := condtree.LogicalCondition{
			Field:    cond.Field,
			Operator: cond.Operator,
			Value:    cond.Value,
		}

		if logic == condtree.LogicNot {
			flush()
			operations = append(operations, condtree.LogicalOperation{
				OperationType:    condtree.LogicNot,
				Conditions:       []condtree.LogicalCondition{triple},
				NestedOperations: []condtree.LogicalOperation{},
			})
			continue
		}

		if len(group) > 0 && logic != groupType {
			flush()
		}
		groupType = logic
		group = append(group, triple)
	}
	flush()

	return operations
}
