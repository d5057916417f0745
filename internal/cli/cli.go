package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/config"
	"github.com/mkleven/puckcal/internal/fetch"
	"github.com/mkleven/puckcal/internal/game"
	"github.com/mkleven/puckcal/internal/ics"
	"github.com/mkleven/puckcal/internal/logger"
	"github.com/mkleven/puckcal/internal/schedule"
	"github.com/mkleven/puckcal/internal/storage"
	"github.com/mkleven/puckcal/internal/team"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNewGames = 2
)

var (
	flagConfig  string
	flagTeam    string
	flagOutput  string
	flagDataDir string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puckcal",
		Short: "Generate an iCalendar file for one team's Olympic hockey games",
		Long: `Fetches the Milano Cortina 2026 ice hockey schedule, extracts the
tracked team's games, and writes them as an .ics calendar file.
Game identities are stable across runs, so re-subscribing is safe.`,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagTeam, "team", "", "Three-letter team code (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Calendar output path (overrides config)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(newListCmd())

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagTeam != "" {
		cfg.TeamCode = strings.ToUpper(strings.TrimSpace(flagTeam))
	}
	if flagOutput != "" {
		cfg.OutputPath = flagOutput
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

func setupLogging() {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	setupLogging()

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, sourceURL, err := extractGames(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	previous, err := store.LoadSnapshot(cfg.TeamCode)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	diff := game.Diff(previous, records)
	if err := store.SaveSnapshot(records, cfg.TeamCode); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	events, err := ics.MaterializeAll(records, ics.Options{
		TrackedName: team.Expand(cfg.TeamCode),
		SourceURL:   sourceURL,
		UTCOffset:   time.Duration(cfg.UTCOffsetMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("materializing events: %w", err)
	}

	document, err := ics.Emit(events, ics.Metadata{Name: cfg.CalendarName, SourceURL: sourceURL})
	if err != nil {
		return fmt.Errorf("emitting calendar: %w", err)
	}
	if err := storage.WriteCalendar(cfg.OutputPath, document); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Team:        cfg.TeamCode,
		SourceURL:   sourceURL,
		OutputPath:  cfg.OutputPath,
		GameCount:   len(records),
		EventCount:  len(events),
		NewGames:    diff.NewGames,
	}
	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(diff.NewGames) > 0 {
		os.Exit(ExitNewGames)
	}
	os.Exit(ExitSuccess)
	return nil
}

// extractGames tries each configured source in order and returns the
// deduplicated records from the first one that yields games.
func extractGames(ctx context.Context, cfg *config.Config) ([]game.Record, string, error) {
	fetcher := fetch.New()
	fallback := fetch.NewColly()

	var lastErr error
	for _, src := range cfg.Sources {
		logger.Info("trying source", logger.Fields{"url": src.URL, "kind": src.Kind})

		body, err := fetcher.Fetch(ctx, src.URL)
		if err != nil {
			logger.Warn("plain fetch failed, retrying with fallback fetcher", logger.Fields{
				"url": src.URL, "error": err.Error(),
			})
			body, err = fallback.Fetch(src.URL)
		}
		if err != nil {
			lastErr = err
			continue
		}

		candidates, err := scanSource(body, src, cfg)
		if err != nil {
			if errors.Is(err, schedule.ErrNoGames) {
				logger.Warn("source yielded no games", logger.Fields{"url": src.URL})
			} else {
				logger.Error("scan failed", logger.Fields{"url": src.URL}, err)
			}
			lastErr = err
			continue
		}

		records := game.Dedupe(candidates)
		if len(records) == 0 {
			lastErr = schedule.ErrNoGames
			continue
		}
		logger.Info("extracted games", logger.Fields{
			"url":        src.URL,
			"candidates": len(candidates),
			"records":    len(records),
		})
		return records, src.URL, nil
	}

	if lastErr == nil {
		lastErr = schedule.ErrNoGames
	}
	return nil, "", fmt.Errorf("all sources failed: %w", lastErr)
}

func scanSource(body []byte, src config.Source, cfg *config.Config) ([]game.Candidate, error) {
	kind := schedule.KindProse
	if src.Kind == "codes" {
		kind = schedule.KindCodes
	}
	target := schedule.NewTarget(cfg.TeamCode, cfg.Year, kind, cfg.UTCOffsetMinutes)

	if src.Kind == "feed" {
		return schedule.ParseFeed(body, target)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return schedule.ScanHTML(doc, target)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
