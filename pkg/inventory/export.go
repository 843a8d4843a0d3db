package inventory

import (
	stdjson "encoding/json"
	"fmt"
	"time"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

// ExportMetadata describes the expression an envelope was exported from.
// The keys are camelCase on the wire, unlike the snake_case store records.
type ExportMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	ExportedAt  string `json:"exportedAt"`
	ExportedBy  string `json:"exportedBy"`
	OriginalID  int64  `json:"originalId,omitempty"`

	// AdditionalFields holds extra metadata keys some exporters attach,
	// preserved so re-exporting an imported file loses nothing.
	AdditionalFields map[string]any `json:"-"`
}

var knownMetadataFields = map[string]bool{
	"name": true, "description": true, "scope": true,
	"exportedAt": true, "exportedBy": true, "originalId": true,
}

// ExportEnvelope is the portable file format for a single expression.
type ExportEnvelope struct {
	Version       int            `json:"version"`
	Metadata      ExportMetadata `json:"metadata"`
	ConditionTree *condtree.Tree `json:"conditionTree"`
}

// BuildExport assembles an export envelope for a saved record and the tree
// decoded (or edited) from it. The record's name and scope fall back to
// "Unnamed" and "global" so hand-built records still export cleanly.
func BuildExport(saved *SavedExpression, tree *condtree.Tree, by string, now time.Time) *ExportEnvelope {
	if saved == nil {
		saved = &SavedExpression{}
	}
	if tree == nil {
		tree = condtree.NewTree()
	}

	name := saved.Name
	if name == "" {
		name = "Unnamed"
	}
	scope := saved.Scope
	if scope == "" {
		scope = "global"
	}

	return &ExportEnvelope{
		Version: Version,
		Metadata: ExportMetadata{
			Name:        name,
			Description: saved.Description,
			Scope:       scope,
			ExportedAt:  now.UTC().Format(time.RFC3339),
			ExportedBy:  by,
			OriginalID:  saved.ID,
		},
		ConditionTree: tree,
	}
}

// ParseExport decodes and validates an export envelope: the version must
// match, and a condition tree and metadata name must be present.
func ParseExport(data []byte) (*ExportEnvelope, error) {
	var envelope ExportEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("inventory: parse export: %w", err)
	}
	if envelope.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrExportVersion, envelope.Version, Version)
	}
	if envelope.ConditionTree == nil {
		return nil, ErrExportTree
	}
	if envelope.Metadata.Name == "" {
		return nil, ErrExportName
	}
	return &envelope, nil
}

// Record converts a parsed envelope into a fresh saved expression the way
// the import flow does: the name gains an " (imported)" suffix, the scope
// resets to global, and the tree is stored in the version-2 wrapper.
func (e *ExportEnvelope) Record() (*SavedExpression, error) {
	description := e.Metadata.Description
	if description == "" {
		description = "Imported inventory"
	}

	saved := &SavedExpression{
		Name:        e.Metadata.Name + " (imported)",
		Description: description,
		Scope:       "global",
	}
	if err := saved.SetTree(e.ConditionTree); err != nil {
		return nil, err
	}
	return saved, nil
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (m *ExportMetadata) UnmarshalJSON(data []byte) error {
	type metadataAlias ExportMetadata
	var aux metadataAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = ExportMetadata(aux)

	var raw map[string]stdjson.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.AdditionalFields = make(map[string]any)
	for key, val := range raw {
		if !knownMetadataFields[key] {
			var decoded any
			if err := json.Unmarshal(val, &decoded); err != nil {
				continue
			}
			m.AdditionalFields[key] = decoded
		}
	}

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (m ExportMetadata) MarshalJSON() ([]byte, error) {
	type metadataAlias ExportMetadata
	aux := metadataAlias(m)

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	if len(m.AdditionalFields) == 0 {
		return data, nil
	}

	var obj map[string]stdjson.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	for key, val := range m.AdditionalFields {
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		obj[key] = encoded
	}

	return json.Marshal(obj)
}
