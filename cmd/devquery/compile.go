package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

func newCompileCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compile an expression into executor operations",
		ArgsUsage: "<file>",
		Action:    compileAction,
	}
}

func compileAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	operations := condtree.Compile(input.Tree)
	return printOutput(cmd, operations, func() string {
		rows := make([][]string, 0, len(operations))
		for i, op := range operations {
			rows = append(rows, []string{
				strconv.Itoa(i),
				string(op.OperationType),
				operationSummary(op),
			})
		}
		return renderTable([]string{"#", "TYPE", "CONDITIONS"}, rows)
	})
}

func operationSummary(op condtree.LogicalOperation) string {
	parts := make([]string, 0, len(op.Conditions)+1)
	for _, c := range op.Conditions {
		parts = append(parts, fmt.Sprintf("%s %s %s", c.Field, c.Operator, c.Value))
	}
	if n := len(op.NestedOperations); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d nested", n))
	}
	return strings.Join(parts, ", ")
}
