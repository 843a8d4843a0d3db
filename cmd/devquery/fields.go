package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-devquery/pkg/catalog"
)

var catalogFlag = &cli.StringFlag{
	Name:  "catalog",
	Usage: "catalog file (JSON or YAML) overriding the stock one",
}

func newFieldsCommand() *cli.Command {
	return &cli.Command{
		Name:   "fields",
		Usage:  "Print the field and operator catalog",
		Flags:  []cli.Flag{catalogFlag},
		Action: fieldsAction,
	}
}

func fieldsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 0 {
		return fmt.Errorf("no arguments expected")
	}

	c := catalog.Default()
	if path := cmd.String(catalogFlag.Name); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return err
		}
		c = loaded
	}

	return printOutput(cmd, c, func() string {
		rows := make([][]string, 0, len(c.Fields)+len(c.Operators)+len(c.Logic))
		for _, opt := range c.Fields {
			rows = append(rows, []string{"field", opt.Value, opt.Label})
		}
		for _, opt := range c.Operators {
			rows = append(rows, []string{"operator", opt.Value, opt.Label})
		}
		for _, opt := range c.Logic {
			rows = append(rows, []string{"logic", opt.Value, opt.Label})
		}
		return renderTable([]string{"KIND", "VALUE", "LABEL"}, rows)
	})
}
