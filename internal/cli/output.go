package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mkleven/puckcal/internal/game"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult is what a generation run reports.
type OutputResult struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Team        string        `json:"team"`
	SourceURL   string        `json:"source_url"`
	OutputPath  string        `json:"output_path"`
	GameCount   int           `json:"game_count"`
	EventCount  int           `json:"event_count"`
	NewGames    []game.Record `json:"new_games"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Wrote %d events for %s to %s\n", result.EventCount, result.Team, result.OutputPath)

	if len(result.NewGames) == 0 {
		fmt.Fprintln(w, "No new games since last run.")
		return nil
	}

	fmt.Fprintf(w, "\n%d new game(s):\n", len(result.NewGames))
	for _, rec := range result.NewGames {
		fmt.Fprintf(w, "  NEW: %s %s vs %s (%s, %s)\n",
			rec.DateStr, rec.TimeStr, rec.Opponent, rec.Round, rec.Venue)
	}
	return nil
}
