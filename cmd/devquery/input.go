package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
	"github.com/robert-malhotra/go-devquery/pkg/inventory"
)

// expressionInput is one loaded expression, whatever shape the file arrived
// in. Tree is always set; Saved and Envelope only for the shapes that carry
// them.
type expressionInput struct {
	Source   string
	Tree     *condtree.Tree
	Saved    *inventory.SavedExpression
	Envelope *inventory.ExportEnvelope
}

func expressionFromCommand(cmd *cli.Command) (*expressionInput, error) {
	if cmd.Args().Len() != 1 {
		return nil, fmt.Errorf("expected 1 argument: expression file, or - for stdin")
	}
	return loadExpression(cmd.Args().First())
}

func loadExpression(path string) (*expressionInput, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return parseExpression(data)
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

// parseExpression sniffs which of the four expression shapes the input is:
// an export envelope, a saved record, a bare tree, or a bare conditions
// array (legacy flat or version-2 wrapped).
func parseExpression(data []byte) (*expressionInput, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty input")
	}

	if trimmed[0] == '[' {
		var conditions []json.RawMessage
		if err := json.Unmarshal(data, &conditions); err != nil {
			return nil, fmt.Errorf("parse conditions array: %w", err)
		}
		tree, err := inventory.DecodeConditions(conditions)
		if err != nil {
			return nil, err
		}
		return &expressionInput{Source: "conditions", Tree: tree}, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	switch {
	case probe["conditionTree"] != nil || probe["metadata"] != nil:
		envelope, err := inventory.ParseExport(data)
		if err != nil {
			return nil, err
		}
		return &expressionInput{Source: "export", Tree: envelope.ConditionTree, Envelope: envelope}, nil
	case probe["conditions"] != nil:
		var saved inventory.SavedExpression
		if err := json.Unmarshal(data, &saved); err != nil {
			return nil, fmt.Errorf("parse saved record: %w", err)
		}
		tree, err := saved.Tree()
		if err != nil {
			return nil, err
		}
		return &expressionInput{Source: "record", Tree: tree, Saved: &saved}, nil
	default:
		tree, err := condtree.ParseTree(data)
		if err != nil {
			return nil, err
		}
		return &expressionInput{Source: "tree", Tree: tree}, nil
	}
}
