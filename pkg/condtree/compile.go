package condtree

// LogicalCondition is one field/operator/value triple as the query executor
// consumes it.
type LogicalCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// LogicalOperation is the executor's nested query node: Conditions and
// NestedOperations are evaluated individually and combined under
// OperationType. ParentLogic is a compile-time annotation marking operations
// that came in through a negated edge; the executor ignores it.
type LogicalOperation struct {
	OperationType    Logic              `json:"operation_type"`
	Conditions       []LogicalCondition `json:"conditions"`
	NestedOperations []LogicalOperation `json:"nested_operations"`
	ParentLogic      Logic              `json:"parent_logic,omitempty"`
}

// Compile converts a tree into the executor's operation list. The list is
// empty for an empty tree ("no filter" matches everything downstream);
// otherwise it holds the combined positive operation followed by one NOT
// operation per negated group, and the executor ANDs list elements together.
//
// Negated groups are normalized into those trailing exclusions no matter how
// deeply the operator nested them: the executor only applies NOT semantics
// to top-level operations, so leaving a NOT node nested would silently turn
// an exclusion into a match.
func Compile(t *Tree) []LogicalOperation {
	if t == nil {
		return []LogicalOperation{}
	}
	positive, exclusions := compileItems(t.InternalLogic, t.Items)
	out := make([]LogicalOperation, 0, 1+len(exclusions))
	if positive != nil {
		out = append(out, *positive)
	}
	return append(out, exclusions...)
}

// compiled is one converted child: a bare triple for a leaf Condition, or an
// operation for a Group.
type compiled struct {
	triple *LogicalCondition
	op     *LogicalOperation
}

// compileItems reduces one node's children to at most one positive operation
// plus the NOT exclusions bubbled up from this level and every level below.
func compileItems(internal Logic, items []Node) (*LogicalOperation, []LogicalOperation) {
	var regular []compiled
	var exclusions []LogicalOperation

	for _, item := range items {
		switch n := item.(type) {
		case *Condition:
			regular = append(regular, compiled{triple: &LogicalCondition{
				Field:    n.Field,
				Operator: n.Operator,
				Value:    n.Value,
			}})
		case *Group:
			child, below := compileItems(n.InternalLogic, n.Items)
			exclusions = append(exclusions, below...)
			if child == nil {
				// An empty group contributes nothing.
				continue
			}
			if n.Logic == LogicNot {
				child.OperationType = LogicNot
				child.ParentLogic = n.Logic
				exclusions = append(exclusions, *child)
				continue
			}
			regular = append(regular, compiled{op: child})
		}
	}

	switch len(regular) {
	case 0:
		return nil, exclusions
	case 1:
		// A lone child needs no combining wrapper: a converted group is
		// emitted as-is, a bare triple gets the minimal enclosing operation.
		if op := regular[0].op; op != nil {
			return op, exclusions
		}
		return newOperation(internal, []LogicalCondition{*regular[0].triple}, nil), exclusions
	}

	// Two or more children combine into one operation under this node's
	// connective. Children that reduce to a single bare condition are
	// inlined; the rest stay nested.
	var conditions []LogicalCondition
	var nestedOps []LogicalOperation
	for _, child := range regular {
		switch {
		case child.triple != nil:
			conditions = append(conditions, *child.triple)
		case len(child.op.Conditions) == 1 && len(child.op.NestedOperations) == 0:
			conditions = append(conditions, child.op.Conditions[0])
		default:
			nestedOps = append(nestedOps, *child.op)
		}
	}
	return newOperation(internal, conditions, nestedOps), exclusions
}

// newOperation builds an operation with non-nil condition and nested lists,
// which the executor's wire format requires even when empty.
func newOperation(typ Logic, conditions []LogicalCondition, nested []LogicalOperation) *LogicalOperation {
	if conditions == nil {
		conditions = []LogicalCondition{}
	}
	if nested == nil {
		nested = []LogicalOperation{}
	}
	return &LogicalOperation{
		OperationType:    typ,
		Conditions:       conditions,
		NestedOperations: nested,
	}
}
