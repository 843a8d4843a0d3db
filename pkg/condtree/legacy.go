package condtree

// FlatCondition is the historical one-dimensional encoding of a condition:
// Logic joins the entry to the one before it, so the first entry's Logic is
// conventionally AND and carries no meaning.
type FlatCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
	Logic    Logic  `json:"logic"`
}

// FlatToTree upgrades a legacy flat list to a tree. Each entry becomes one
// top-level Condition with a fresh id, in order, field/operator/value copied
// verbatim; the flat format has no groups, so none are inferred.
//
// The tree's InternalLogic is taken from the first entry's Logic alone,
// interpreting it as the connective for the whole list. Flat lists that mix
// AND and OR mid-list cannot be represented by a single connective and no
// attempt is made to: the remaining entries' Logic is discarded. This lossy
// upgrade is long-standing behavior that round-trip callers rely on.
//
// A nil or empty list yields the canonical empty tree; the conversion never
// fails.
func FlatToTree(flat []FlatCondition) *Tree {
	t := NewTree()
	if len(flat) == 0 {
		return t
	}
	if first := flat[0].Logic; first == LogicAnd || first == LogicOr {
		t.InternalLogic = first
	}
	for _, entry := range flat {
		t.Items = append(t.Items, &Condition{
			ID:       newID(),
			Field:    entry.Field,
			Operator: entry.Operator,
			Value:    entry.Value,
		})
	}
	return t
}

// TreeToFlat flattens a tree back to the legacy list. Conditions are emitted
// in document order; each Group contributes no entry of its own but sets the
// connective context for its descendants via its InternalLogic. The very
// first Condition emitted gets Logic AND; every later one gets the context
// in effect at its depth. Grouping and negation structure is intentionally
// discarded: this exists for call sites that still want a flat list plus a
// best-effort connective per item.
func TreeToFlat(t *Tree) []FlatCondition {
	flat := make([]FlatCondition, 0)
	if t == nil {
		return flat
	}
	flattenItems(t.Items, t.InternalLogic, &flat)
	return flat
}

func flattenItems(items []Node, context Logic, flat *[]FlatCondition) {
	for _, item := range items {
		switch n := item.(type) {
		case *Condition:
			logic := context
			if len(*flat) == 0 {
				logic = LogicAnd
			}
			*flat = append(*flat, FlatCondition{
				Field:    n.Field,
				Operator: n.Operator,
				Value:    n.Value,
				Logic:    logic,
			})
		case *Group:
			flattenItems(n.Items, n.InternalLogic, flat)
		}
	}
}
