package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "output format: json, yaml or table",
	Value:   "json",
}

func main() {
	cmd := &cli.Command{
		Name:  "devquery",
		Usage: "Inspect, convert and compile device inventory expressions",
		Flags: []cli.Flag{outputFlag},
		Commands: []*cli.Command{
			newInspectCommand(),
			newCompileCommand(),
			newRenderCommand(),
			newUpgradeCommand(),
			newFlattenCommand(),
			newExportCommand(),
			newFieldsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
