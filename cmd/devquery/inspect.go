package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

// expressionSummary is the inspect view of a loaded expression.
type expressionSummary struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Source      string `json:"source"`
	Expression  string `json:"expression"`
	Conditions  int    `json:"conditions"`
	Groups      int    `json:"groups"`
	Operations  int    `json:"operations"`
}

func newInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Summarize an expression file",
		ArgsUsage: "<file>",
		Action:    inspectAction,
	}
}

func inspectAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	summary := newExpressionSummary(input)
	return printOutput(cmd, summary, func() string {
		return renderTable(
			[]string{"PROPERTY", "VALUE"},
			[][]string{
				{"Name", summary.Name},
				{"Description", summary.Description},
				{"Scope", summary.Scope},
				{"Source", summary.Source},
				{"Expression", summary.Expression},
				{"Conditions", strconv.Itoa(summary.Conditions)},
				{"Groups", strconv.Itoa(summary.Groups)},
				{"Operations", strconv.Itoa(summary.Operations)},
			},
		)
	})
}

func newExpressionSummary(input *expressionInput) *expressionSummary {
	summary := &expressionSummary{
		Source:     input.Source,
		Expression: condtree.Render(input.Tree),
		Operations: len(condtree.Compile(input.Tree)),
	}

	for _, node := range condtree.Walk(input.Tree) {
		switch node.(type) {
		case *condtree.Condition:
			summary.Conditions++
		case *condtree.Group:
			summary.Groups++
		}
	}

	switch {
	case input.Saved != nil:
		summary.Name = input.Saved.Name
		summary.Description = input.Saved.Description
		summary.Scope = input.Saved.Scope
	case input.Envelope != nil:
		summary.Name = input.Envelope.Metadata.Name
		summary.Description = input.Envelope.Metadata.Description
		summary.Scope = input.Envelope.Metadata.Scope
	}

	return summary
}
