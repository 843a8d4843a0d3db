package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// printOutput writes v in the format selected by --output. Commands with a
// tabular view pass it as tableView; the others pass nil and table output is
// rejected.
func printOutput(cmd *cli.Command, v any, tableView func() string) error {
	switch format := cmd.String(outputFlag.Name); format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	case "yaml":
		data, err := yamlFromJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, string(data))
		return err
	case "table":
		if tableView == nil {
			return fmt.Errorf("no table view for this command, use --output json or yaml")
		}
		_, err := fmt.Fprintln(os.Stdout, tableView())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// yamlFromJSON marshals v through its JSON representation first, so the YAML
// keys match the wire names instead of lowercased Go field names.
func yamlFromJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}
