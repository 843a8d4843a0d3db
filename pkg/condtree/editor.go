package condtree

import "errors"

// ErrNilTree is returned when a nil tree is supplied to WithTree.
var ErrNilTree = errors.New("condtree: tree cannot be nil")

// Logger represents the minimal logging interface used by the editor.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// EditorOption configures an Editor during construction.
type EditorOption func(*Editor) error

// WithTree seeds the editor with an existing tree instead of an empty one.
func WithTree(t *Tree) EditorOption {
	return func(e *Editor) error {
		if t == nil {
			return ErrNilTree
		}
		e.tree = t
		return nil
	}
}

// WithLogger registers a logger for editing lifecycle events.
func WithLogger(logger Logger) EditorOption {
	return func(e *Editor) error {
		e.logger = logger
		return nil
	}
}

// Editor is the interactive mutation surface over one tree. It owns the
// current tree value and the current target path: the chain of Group ids
// new nodes are appended under (empty path targets the root).
//
// Every mutation rebuilds the path from the root to the changed node and
// shares untouched subtrees, so a previously obtained *Tree keeps observing
// a stable snapshot. Mutations against a target that no longer exists are
// silent no-ops; the operator may have deleted the group they were inside,
// and the editor must stay usable.
type Editor struct {
	tree       *Tree
	targetPath []string
	logger     Logger
}

// NewEditor constructs an Editor with the provided options, starting from
// the canonical empty tree unless WithTree overrides it.
func NewEditor(opts ...EditorOption) (*Editor, error) {
	e := &Editor{tree: NewTree()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Tree returns the current tree value.
func (e *Editor) Tree() *Tree {
	return e.tree
}

// SetTree replaces the current tree wholesale, e.g. when a different saved
// expression is loaded. The target path is reset to the root.
func (e *Editor) SetTree(t *Tree) {
	if t == nil {
		t = NewTree()
	}
	e.tree = t
	e.targetPath = nil
}

// TargetPath returns a copy of the current target path.
func (e *Editor) TargetPath() []string {
	if len(e.targetPath) == 0 {
		return nil
	}
	out := make([]string, len(e.targetPath))
	copy(out, e.targetPath)
	return out
}

// SetTargetPath replaces the current target path outright. An empty path
// returns the target to the root.
func (e *Editor) SetTargetPath(path []string) {
	if len(path) == 0 {
		e.targetPath = nil
		return
	}
	e.targetPath = make([]string, len(path))
	copy(e.targetPath, path)
}

// AddCondition appends a fresh Condition to the current target's items and
// returns the new tree. A dangling target leaves the tree unchanged.
func (e *Editor) AddCondition(field, operator, value string) *Tree {
	node := &Condition{
		ID:       newID(),
		Field:    field,
		Operator: operator,
		Value:    value,
	}
	return e.appendNode(node)
}

// AddGroup appends a fresh empty Group to the current target's items and
// returns the new tree. The group combines its future children with AND;
// negate overrides logic with NOT.
func (e *Editor) AddGroup(logic Logic, negate bool) *Tree {
	if negate {
		logic = LogicNot
	}
	node := &Group{
		ID:            newID(),
		Logic:         logic,
		InternalLogic: LogicAnd,
		Items:         []Node{},
	}
	return e.appendNode(node)
}

func (e *Editor) appendNode(node Node) *Tree {
	items, ok := appendAt(e.tree.Items, e.targetPath, node)
	if !ok {
		if e.logger != nil {
			e.logger.Debugf("condtree: target path %v not found, add ignored", e.targetPath)
		}
		return e.tree
	}
	e.tree = &Tree{InternalLogic: e.tree.InternalLogic, Items: items}
	return e.tree
}

// RemoveItem removes the node with the given id anywhere in the tree and
// returns the new tree. Removing a Group discards its whole subtree. The
// target path is intentionally not adjusted: callers detect a dangling
// target through the resulting no-ops.
func (e *Editor) RemoveItem(id string) *Tree {
	items, ok := removeByID(e.tree.Items, id)
	if !ok {
		if e.logger != nil {
			e.logger.Debugf("condtree: remove %s: no such node", id)
		}
		return e.tree
	}
	if e.logger != nil {
		e.logger.Debugf("condtree: removed %s", id)
	}
	e.tree = &Tree{InternalLogic: e.tree.InternalLogic, Items: items}
	return e.tree
}

// UpdateGroupLogic sets the InternalLogic of the group with the given id,
// leaving the group's own connective untouched, and returns the new tree.
// An unknown id leaves the tree unchanged.
func (e *Editor) UpdateGroupLogic(groupID string, internal Logic) *Tree {
	items, ok := setGroupLogic(e.tree.Items, groupID, internal)
	if !ok {
		if e.logger != nil {
			e.logger.Debugf("condtree: update logic %s: no such group", groupID)
		}
		return e.tree
	}
	e.tree = &Tree{InternalLogic: e.tree.InternalLogic, Items: items}
	return e.tree
}

// FindGroupPath returns the chain of Group ids from a top-level child down
// to and including groupID, for use with SetTargetPath.
func (e *Editor) FindGroupPath(groupID string) ([]string, bool) {
	return groupPath(e.tree.Items, groupID)
}
