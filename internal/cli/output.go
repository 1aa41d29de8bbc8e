package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/axent-pl/issuerid/common"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputTable, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", common.ErrInvalidArgument, s)
	}
}

// encode writes v as JSON or YAML. Table output is handled by the caller.
func encode(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("%w: cannot encode %s output", common.ErrInvalidArgument, format)
	}
}

func renderIdentifiers(w io.Writer, format outputFormat, result common.Result) error {
	if format != outputTable {
		return encode(w, format, result)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Identifier", "Type"})
	for i, id := range result.Identifiers() {
		t.AppendRow(table.Row{i + 1, id.Identifier, id.Type})
	}
	t.Render()
	return nil
}

func renderFragment(w io.Writer, format outputFormat, fragment common.Fragment) error {
	if format != outputTable {
		return encode(w, format, fragment)
	}
	data, err := json.Marshal(fragment.Data)
	if err != nil {
		return fmt.Errorf("encoding fragment data: %w", err)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Type", fragment.Type},
		{"Name", fragment.Name},
		{"Status", fragment.Status},
		{"Data", string(data)},
	})
	t.Render()
	return nil
}
