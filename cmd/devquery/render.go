package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/condtree"
)

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Print an expression as readable text",
		ArgsUsage: "<file>",
		Action:    renderAction,
	}
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, condtree.Render(input.Tree))
	return err
}
