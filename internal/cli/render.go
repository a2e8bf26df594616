package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"portview/internal/types"
)

// renderTable writes a plain left-aligned table, matching the device's
// traditional show-command layout.
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetCenterSeparator(" ")
	table.SetColumnSeparator(" ")
	table.SetRowSeparator("-")
	table.AppendBulk(rows)
	table.Render()
}

// renderGrid writes a fully bordered grid table.
func renderGrid(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// renderBreakoutJSON writes the breakout summary as a JSON document with
// parent ports in natural order and fixed four-space indentation. The
// outer object is assembled by hand: encoding/json alone would order the
// parents alphabetically, putting Ethernet10 before Ethernet2.
func renderBreakoutJSON(w io.Writer, configs []types.BreakoutConfig) error {
	buf := &bytes.Buffer{}
	buf.WriteString("{")
	for i, cfg := range configs {
		entry := make(map[string]any, len(cfg.Attrs)+3)
		for k, v := range cfg.Attrs {
			entry[k] = v
		}
		entry["Current Breakout Mode"] = cfg.CurrentMode
		entry["child ports"] = strings.Join(cfg.ChildPorts, ",")
		entry["child port speeds"] = strings.Join(cfg.ChildSpeeds, ",")

		inner, err := json.MarshalIndent(entry, "    ", "    ")
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(buf, "\n    %q: %s", cfg.Port, inner)
	}
	if len(configs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
