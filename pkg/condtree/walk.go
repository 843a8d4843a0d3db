package condtree

import "iter"

// Walk yields every node in the tree in document order, paired with the path
// of enclosing Group ids (outermost first; empty for top-level nodes).
// The yielded path slice is reused between iterations; copy it to retain it.
func Walk(t *Tree) iter.Seq2[[]string, Node] {
	return func(yield func([]string, Node) bool) {
		if t == nil {
			return
		}
		walkItems(t.Items, nil, yield)
	}
}

func walkItems(items []Node, path []string, yield func([]string, Node) bool) bool {
	for _, item := range items {
		if !yield(path, item) {
			return false
		}
		if g, ok := item.(*Group); ok {
			if !walkItems(g.Items, append(path, g.ID), yield) {
				return false
			}
		}
	}
	return true
}

// appendAt rebuilds items with node appended to the Group addressed by path
// (or to items itself when path is empty). Only the spine from the list down
// to the target group is copied; untouched subtrees are shared. Reports
// false without rebuilding when the path does not resolve.
func appendAt(items []Node, path []string, node Node) ([]Node, bool) {
	if len(path) == 0 {
		out := make([]Node, 0, len(items)+1)
		out = append(out, items...)
		return append(out, node), true
	}
	for i, item := range items {
		g, ok := item.(*Group)
		if !ok || g.ID != path[0] {
			continue
		}
		children, ok := appendAt(g.Items, path[1:], node)
		if !ok {
			return nil, false
		}
		replaced := *g
		replaced.Items = children
		out := make([]Node, len(items))
		copy(out, items)
		out[i] = &replaced
		return out, true
	}
	return nil, false
}

// removeByID rebuilds items without the node carrying id, searching the
// whole structure. Removing a Group discards its entire subtree.
func removeByID(items []Node, id string) ([]Node, bool) {
	for i, item := range items {
		if nodeID(item) == id {
			out := make([]Node, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
		g, ok := item.(*Group)
		if !ok {
			continue
		}
		children, removed := removeByID(g.Items, id)
		if !removed {
			continue
		}
		replaced := *g
		replaced.Items = children
		out := make([]Node, len(items))
		copy(out, items)
		out[i] = &replaced
		return out, true
	}
	return nil, false
}

// setGroupLogic rebuilds items with the matching group's InternalLogic
// replaced; the group's own Logic is left alone.
func setGroupLogic(items []Node, id string, internal Logic) ([]Node, bool) {
	for i, item := range items {
		g, ok := item.(*Group)
		if !ok {
			continue
		}
		if g.ID == id {
			replaced := *g
			replaced.InternalLogic = internal
			out := make([]Node, len(items))
			copy(out, items)
			out[i] = &replaced
			return out, true
		}
		children, changed := setGroupLogic(g.Items, id, internal)
		if !changed {
			continue
		}
		replaced := *g
		replaced.Items = children
		out := make([]Node, len(items))
		copy(out, items)
		out[i] = &replaced
		return out, true
	}
	return nil, false
}

// groupPath returns the Group ids from a top-level child down to and
// including id. Conditions never appear in a path.
func groupPath(items []Node, id string) ([]string, bool) {
	for _, item := range items {
		g, ok := item.(*Group)
		if !ok {
			continue
		}
		if g.ID == id {
			return []string{g.ID}, true
		}
		if rest, found := groupPath(g.Items, id); found {
			return append([]string{g.ID}, rest...), true
		}
	}
	return nil, false
}

func nodeID(n Node) string {
	switch v := n.(type) {
	case *Condition:
		return v.ID
	case *Group:
		return v.ID
	}
	return ""
}
