package condtree

import "github.com/google/uuid"

// Logic is a boolean connective joining a node to the sibling before it,
// or combining a node's own children.
type Logic string

const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
	LogicNot Logic = "NOT"
)

// Node is a member of a Tree or Group child list: either a *Condition
// or a *Group.
type Node interface {
	isNode()
}

// Condition is a leaf test of one device attribute. Field, operator and
// value are opaque strings here; validating them against a schema is the
// catalog's concern, not this package's.
type Condition struct {
	ID       string `json:"id"`
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

func (*Condition) isNode() {}

// Group combines its children under InternalLogic. Logic describes how the
// group joins the sibling preceding it in its parent; LogicNot there means
// the whole group is negated. Negation is a property of the edge into the
// group, never of its interior, so InternalLogic is only ever AND or OR.
type Group struct {
	ID            string `json:"id"`
	Logic         Logic  `json:"logic"`
	InternalLogic Logic  `json:"internalLogic"`
	Items         []Node `json:"items"`
}

func (*Group) isNode() {}

// Tree is the root of a condition expression. Unlike a Group it cannot be
// negated or nested.
type Tree struct {
	InternalLogic Logic  `json:"internalLogic"`
	Items         []Node `json:"items"`
}

// NewTree returns the canonical empty tree: InternalLogic AND, no items.
// Every call allocates a fresh value; callers may mutate the result freely.
func NewTree() *Tree {
	return &Tree{
		InternalLogic: LogicAnd,
		Items:         []Node{},
	}
}

// newID returns a fresh node identifier. IDs are never reused within an
// editing session.
func newID() string {
	return uuid.NewString()
}
