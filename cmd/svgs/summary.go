package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/treyhoover/svgs/internal/batch"
)

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type summaryRow struct {
	label string
	value string
}

func summaryRows(summary *batch.Summary) []summaryRow {
	rows := []summaryRow{
		{"Found", fmt.Sprintf("%d", summary.Found)},
		{"Annotated", fmt.Sprintf("%d", summary.Annotated)},
		{"Skipped", fmt.Sprintf("%d", summary.Skipped)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
	}
	if summary.CatalogPath != "" {
		rows = append(rows,
			summaryRow{"Catalog", summary.CatalogPath},
			summaryRow{"Catalog entries", fmt.Sprintf("%d", summary.CatalogEntries)})
	}
	return rows
}

// renderSummary formats the end-of-run report. Terminals get a table, pipes
// get plain lines; failed items are always listed individually with their
// error kind so the offending stage is visible at a glance.
func renderSummary(summary *batch.Summary, tty bool) string {
	rows := summaryRows(summary)

	var out strings.Builder
	if tty {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Result", "Value"})
		for _, row := range rows {
			tw.AppendRow(table.Row{row.label, row.value})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
			{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		})
		out.WriteString(tw.Render())
	} else {
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToLower(row.label), row.value))
		}
		out.WriteString(strings.Join(lines, "\n"))
	}

	for _, failure := range summary.Failures {
		out.WriteString(fmt.Sprintf("\nfailed (%s): %s", failure.Kind, failure.Item.Path))
	}
	return out.String()
}
