package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subweave/internal/language"
	"subweave/internal/runlog"
)

// sourceColumnWidth caps the Source column so long input paths do not blow
// out the listing.
const sourceColumnWidth = 40

// runsTable renders the run history listing with its fixed column set.
func runsTable(runs []*runlog.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Created", "Source", "Language", "Merged", "Translit", "Status", "Artifacts"})
	for _, run := range runs {
		tw.AppendRow(table.Row{
			shortID(run.ID),
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(run.Source, sourceColumnWidth),
			language.DisplayName(run.Language),
			yesNo(run.Merged),
			yesNo(run.Transliterated),
			string(run.Status),
			fmt.Sprintf("%d", len(run.Artifacts)),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 8, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
