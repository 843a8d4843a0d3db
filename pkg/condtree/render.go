package condtree

import (
	"fmt"
	"strings"
)

// operatorSymbols maps operator tokens to their display form. Unknown tokens
// render verbatim rather than failing: the token set is the catalog's
// business and may grow without this package noticing.
var operatorSymbols = map[string]string{
	"equals":       "=",
	"not_equals":   "!=",
	"contains":     "contains",
	"not_contains": "not contains",
	"starts_with":  "starts with",
	"ends_with":    "ends with",
	"greater_than": ">",
	"less_than":    "<",
	"is_empty":     "is empty",
	"is_not_empty": "is not empty",
}

// Render produces the human-readable infix form of a tree, for preview and
// audit. An empty tree renders as "No conditions".
func Render(t *Tree) string {
	if t == nil {
		return "No conditions"
	}
	return renderItems(t.Items, t.InternalLogic)
}

// RenderGroup renders a group's interior the same way Render treats the
// root; the enclosing parentheses and connective belong to the parent.
func RenderGroup(g *Group) string {
	if g == nil {
		return "No conditions"
	}
	return renderItems(g.Items, g.InternalLogic)
}

func renderItems(items []Node, internal Logic) string {
	if len(items) == 0 {
		return "No conditions"
	}

	parts := make([]string, 0, len(items))
	for i, item := range items {
		switch n := item.(type) {
		case *Condition:
			parts = append(parts, renderCondition(n))
		case *Group:
			part := "(" + renderItems(n.Items, n.InternalLogic) + ")"
			// A group carries its own connective to the previous sibling;
			// the first sibling has nothing to connect to.
			if i > 0 {
				part = string(n.Logic) + " " + part
			}
			parts = append(parts, part)
		}
	}

	if len(parts) == 1 {
		return parts[0]
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(" ")
		if !startsWithConnective(part) {
			b.WriteString(string(internal))
			b.WriteString(" ")
		}
		b.WriteString(part)
	}
	return b.String()
}

func renderCondition(c *Condition) string {
	symbol, ok := operatorSymbols[c.Operator]
	if !ok {
		symbol = c.Operator
	}
	return fmt.Sprintf("%s %s %q", c.Field, symbol, c.Value)
}

// startsWithConnective reports whether a rendered part already begins with
// its own connective token, so joining must not prefix a second one.
func startsWithConnective(part string) bool {
	return strings.HasPrefix(part, "AND ") ||
		strings.HasPrefix(part, "OR ") ||
		strings.HasPrefix(part, "NOT ")
}
