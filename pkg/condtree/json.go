package condtree

import (
	"encoding/json"
	"fmt"
)

// Wire encoding, shared with the saved-expression store and export files:
//
//	root      {"type":"root","internalLogic":"AND","items":[...]}
//	group     {"id":...,"type":"group","logic":...,"internalLogic":...,"items":[...]}
//	condition {"id":...,"field":...,"operator":...,"value":...}
//
// An item is decoded as a Group when its "type" is "group" or it carries an
// "items" key; anything else is a Condition. Unknown keys are ignored.

// MarshalJSON encodes the tree with its "root" type marker.
func (t *Tree) MarshalJSON() ([]byte, error) {
	items := t.Items
	if items == nil {
		items = []Node{}
	}
	return json.Marshal(struct {
		Kind          string `json:"type"`
		InternalLogic Logic  `json:"internalLogic"`
		Items         []Node `json:"items"`
	}{
		Kind:          "root",
		InternalLogic: t.InternalLogic,
		Items:         items,
	})
}

// UnmarshalJSON decodes a tree, tolerating a missing type marker and
// defaulting InternalLogic to AND.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var raw struct {
		InternalLogic Logic             `json:"internalLogic"`
		Items         []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("condtree: decode tree: %w", err)
	}
	items, err := decodeItems(raw.Items)
	if err != nil {
		return err
	}
	t.InternalLogic = normalizeInternal(raw.InternalLogic)
	t.Items = items
	return nil
}

// MarshalJSON encodes the group with its "group" type marker.
func (g *Group) MarshalJSON() ([]byte, error) {
	items := g.Items
	if items == nil {
		items = []Node{}
	}
	return json.Marshal(struct {
		ID            string `json:"id"`
		Kind          string `json:"type"`
		Logic         Logic  `json:"logic"`
		InternalLogic Logic  `json:"internalLogic"`
		Items         []Node `json:"items"`
	}{
		ID:            g.ID,
		Kind:          "group",
		Logic:         g.Logic,
		InternalLogic: g.InternalLogic,
		Items:         items,
	})
}

// UnmarshalJSON decodes a group and its item list recursively.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            string            `json:"id"`
		Logic         Logic             `json:"logic"`
		InternalLogic Logic             `json:"internalLogic"`
		Items         []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("condtree: decode group: %w", err)
	}
	items, err := decodeItems(raw.Items)
	if err != nil {
		return err
	}
	g.ID = raw.ID
	g.Logic = raw.Logic
	if g.Logic == "" {
		g.Logic = LogicAnd
	}
	g.InternalLogic = normalizeInternal(raw.InternalLogic)
	g.Items = items
	return nil
}

// ParseTree decodes a tree from its wire form.
func ParseTree(data []byte) (*Tree, error) {
	t := NewTree()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeItems(raw []json.RawMessage) ([]Node, error) {
	items := make([]Node, 0, len(raw))
	for _, entry := range raw {
		node, err := decodeNode(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
	return items, nil
}

func decodeNode(data json.RawMessage) (Node, error) {
	var probe struct {
		Kind  string          `json:"type"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("condtree: decode node: %w", err)
	}
	if probe.Kind == "group" || probe.Items != nil {
		var g Group
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return &g, nil
	}
	var c Condition
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("condtree: decode condition: %w", err)
	}
	return &c, nil
}

// normalizeInternal clamps the child-combining connective to AND/OR;
// anything else (including absence) falls back to AND.
func normalizeInternal(l Logic) Logic {
	if l == LogicOr {
		return LogicOr
	}
	return LogicAnd
}
