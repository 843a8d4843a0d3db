package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/inventory"
)

var (
	exportNameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "expression name for the export metadata",
	}
	exportDescriptionFlag = &cli.StringFlag{
		Name:  "description",
		Usage: "expression description for the export metadata",
	}
	exportScopeFlag = &cli.StringFlag{
		Name:  "scope",
		Usage: "expression scope for the export metadata",
	}
	exportByFlag = &cli.StringFlag{
		Name:  "by",
		Usage: "who the export is attributed to",
		Value: "devquery",
	}
)

func newExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Wrap an expression in a portable export envelope",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			exportNameFlag,
			exportDescriptionFlag,
			exportScopeFlag,
			exportByFlag,
		},
		Action: exportAction,
	}
}

func exportAction(ctx context.Context, cmd *cli.Command) error {
	input, err := expressionFromCommand(cmd)
	if err != nil {
		return err
	}

	saved := input.Saved
	if saved == nil {
		saved = &inventory.SavedExpression{}
		if input.Envelope != nil {
			saved.Name = input.Envelope.Metadata.Name
			saved.Description = input.Envelope.Metadata.Description
			saved.Scope = input.Envelope.Metadata.Scope
			saved.ID = input.Envelope.Metadata.OriginalID
		}
	}
	if name := cmd.String(exportNameFlag.Name); name != "" {
		saved.Name = name
	}
	if description := cmd.String(exportDescriptionFlag.Name); description != "" {
		saved.Description = description
	}
	if scope := cmd.String(exportScopeFlag.Name); scope != "" {
		saved.Scope = scope
	}

	envelope := inventory.BuildExport(saved, input.Tree, cmd.String(exportByFlag.Name), time.Now())
	return printOutput(cmd, envelope, nil)
}
