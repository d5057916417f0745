package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newListCmd creates the list subcommand, which prints the extracted
// games as a table without writing the calendar or touching snapshots.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the schedule and print the tracked team's games",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, sourceURL, err := extractGames(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Time", "Opponent", "Round", "Venue", "ID"})
	for _, rec := range records {
		t.AppendRow(table.Row{rec.DateStr, rec.TimeStr, rec.Opponent, rec.Round, rec.Venue, rec.ID})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Source", sourceURL})
	t.Render()

	return nil
}
