package condtree

// Builder accumulates a tree in a fluent manner, for programmatic callers
// that do not need the editor's interactive target tracking.
//
//	tree := condtree.NewBuilder().
//		Condition("role", "equals", "router").
//		Group(condtree.LogicOr, func(g *condtree.Builder) {
//			g.InternalLogic(condtree.LogicOr)
//			g.Condition("location", "equals", "fra1")
//			g.Condition("location", "equals", "ams1")
//		}).
//		Build()
type Builder struct {
	internal Logic
	items    []Node
}

// NewBuilder returns an empty Builder combining top-level items with AND.
func NewBuilder() *Builder {
	return &Builder{internal: LogicAnd}
}

// InternalLogic sets how this level's items combine with each other.
func (b *Builder) InternalLogic(l Logic) *Builder {
	b.internal = normalizeInternal(l)
	return b
}

// Condition appends a fresh-id leaf condition.
func (b *Builder) Condition(field, operator, value string) *Builder {
	b.items = append(b.items, &Condition{
		ID:       newID(),
		Field:    field,
		Operator: operator,
		Value:    value,
	})
	return b
}

// Group appends a subgroup joined to the preceding sibling with logic; fn
// populates its interior through a nested Builder.
func (b *Builder) Group(logic Logic, fn func(g *Builder)) *Builder {
	sub := NewBuilder()
	if fn != nil {
		fn(sub)
	}
	b.items = append(b.items, &Group{
		ID:            newID(),
		Logic:         logic,
		InternalLogic: sub.internal,
		Items:         sub.buildItems(),
	})
	return b
}

// NotGroup appends a negated subgroup.
func (b *Builder) NotGroup(fn func(g *Builder)) *Builder {
	return b.Group(LogicNot, fn)
}

// Build returns the constructed tree. The Builder may keep being used; later
// additions do not affect previously built trees' item lists.
func (b *Builder) Build() *Tree {
	return &Tree{
		InternalLogic: b.internal,
		Items:         b.buildItems(),
	}
}

func (b *Builder) buildItems() []Node {
	items := make([]Node, len(b.items))
	copy(items, b.items)
	return items
}
