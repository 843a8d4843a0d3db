package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
	"github.com/robert-malhotra/go-devquery/pkg/inventory"
)

func newUpgradeCommand() *cli.Command {
	return &cli.Command{
		Name:      "upgrade",
		Usage:     "Rewrite stored conditions in the version-2 tree encoding",
		ArgsUsage: "<file>",
		Action:    upgradeAction,
	}
}

func upgradeAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	// A full record is upgraded in place; anything else prints the bare
	// conditions array.
	if input.Saved != nil {
		if err := input.Saved.SetTree(input.Tree); err != nil {
			return err
		}
		return printOutput(cmd, input.Saved, nil)
	}

	conditions, err := inventory.EncodeConditions(input.Tree)
	if err != nil {
		return err
	}
	return printOutput(cmd, conditions, nil)
}

func newFlattenCommand() *cli.Command {
	return &cli.Command{
		Name:      "flatten",
		Usage:     "Flatten an expression into the legacy condition list",
		ArgsUsage: "<file>",
		Action:    flattenAction,
	}
}

func flattenAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	flat := condtree.TreeToFlat(input.Tree)
	return printOutput(cmd, flat, func() string {
		rows := make([][]string, 0, len(flat))
		for _, cond := range flat {
			rows = append(rows, []string{cond.Field, cond.Operator, cond.Value, string(cond.Logic)})
		}
		return renderTable([]string{"FIELD", "OPERATOR", "VALUE", "LOGIC"}, rows)
	})
}
