package inventory

import (
	stdjson "encoding/json"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

// SavedExpression is one stored inventory expression record, with support
// for foreign members so unknown store columns survive a round trip.
type SavedExpression struct {
	ID          int64                `json:"id,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Scope       string               `json:"scope,omitempty"`
	Conditions  []stdjson.RawMessage `json:"conditions"`
	CreatedBy   string               `json:"created_by,omitempty"`
	CreatedAt   string               `json:"created_at,omitempty"`
	UpdatedAt   string               `json:"updated_at,omitempty"`
	IsActive    *bool                `json:"is_active,omitempty"`

	// AdditionalFields holds foreign members not part of the record schema.
	AdditionalFields map[string]any `json:"-"`
}

var knownRecordFields = map[string]bool{
	"id": true, "name": true, "description": true, "scope": true,
	"conditions": true, "created_by": true, "created_at": true,
	"updated_at": true, "is_active": true,
}

// Active reports the record's active flag. Records written before the flag
// existed default to active.
func (s *SavedExpression) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// Tree decodes the record's stored conditions into a tree.
func (s *SavedExpression) Tree() (*condtree.Tree, error) {
	return DecodeConditions(s.Conditions)
}

// SetTree replaces the record's stored conditions with the version-2
// encoding of tree.
func (s *SavedExpression) SetTree(tree *condtree.Tree) error {
	conditions, err := EncodeConditions(tree)
	if err != nil {
		return err
	}
	s.Conditions = conditions
	return nil
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (s *SavedExpression) UnmarshalJSON(data []byte) error {
	type recordAlias SavedExpression
	var aux recordAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = SavedExpression(aux)

	var raw map[string]stdjson.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.AdditionalFields = make(map[string]any)
	for key, val := range raw {
		if !knownRecordFields[key] {
			var decoded any
			if err := json.Unmarshal(val, &decoded); err != nil {
				continue
			}
			s.AdditionalFields[key] = decoded
		}
	}

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (s SavedExpression) MarshalJSON() ([]byte, error) {
	type recordAlias SavedExpression
	aux := recordAlias(s)
	if aux.Conditions == nil {
		aux.Conditions = []stdjson.RawMessage{}
	}

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	if len(s.AdditionalFields) == 0 {
		return data, nil
	}

	var obj map[string]stdjson.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	for key, val := range s.AdditionalFields {
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		obj[key] = encoded
	}

	return json.Marshal(obj)
}
