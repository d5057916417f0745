package ics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mkleven/puckcal/internal/extract"
	"github.com/mkleven/puckcal/internal/game"
	"github.com/mkleven/puckcal/internal/logger"
	"github.com/mkleven/puckcal/internal/team"
)

// ErrNoEvents is returned when zero records survive materialization. A
// calendar with no events is never emitted.
var ErrNoEvents = errors.New("no materializable events")

// GameDuration is the blocked slot per game. Actual game length is not
// known in advance.
const GameDuration = 2*time.Hour + 30*time.Minute

// uidSuffix namespaces event UIDs within the calendar ecosystem.
const uidSuffix = "@puckcal"

// Event is one exportable calendar event.
type Event struct {
	UID         string
	Start       time.Time // UTC
	End         time.Time // UTC
	Summary     string
	Description string
	Location    string
	Status      string
	Categories  string
}

// Options configures materialization for one generation pass.
type Options struct {
	TrackedName string        // display name of the tracked team
	SourceURL   string        // where the schedule came from, for descriptions
	UTCOffset   time.Duration // fixed host-country offset, e.g. time.Hour
}

// Materialize converts a record's local date/time strings into an event
// with absolute UTC instants. Fails for out-of-range or unparseable
// date/time components.
func Materialize(rec game.Record, opts Options) (Event, error) {
	day, month, year, err := parseDayFirst(rec.DateStr)
	if err != nil {
		return Event{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	hour, minute, err := extract.ParseClock(rec.TimeStr)
	if err != nil {
		return Event{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).Add(-opts.UTCOffset)
	end := start.Add(GameDuration)

	opponent := team.Normalize(rec.Opponent)

	location := rec.Venue
	if rec.Venue != extract.DefaultVenue {
		location = rec.Venue + ", " + extract.DefaultVenue
	}

	description := fmt.Sprintf("Round: %s\nOpponent: %s\nVenue: %s\nSource: %s",
		rec.Round, opponent, rec.Venue, opts.SourceURL)

	return Event{
		UID:         rec.ID + uidSuffix,
		Start:       start,
		End:         end,
		Summary:     fmt.Sprintf("%s vs %s (Ice Hockey, Milano Cortina 2026)", opts.TrackedName, opponent),
		Description: description,
		Location:    location,
		Status:      "CONFIRMED",
		Categories:  "Olympics,Ice Hockey",
	}, nil
}

// MaterializeAll converts every record, skipping and logging the ones
// that fail date/time validation. Returns ErrNoEvents when none survive.
func MaterializeAll(records []game.Record, opts Options) ([]Event, error) {
	events := make([]Event, 0, len(records))
	for _, rec := range records {
		evt, err := Materialize(rec, opts)
		if err != nil {
			logger.Warn("skipping record that failed materialization", logger.Fields{
				"id":    rec.ID,
				"date":  rec.DateStr,
				"time":  rec.TimeStr,
				"error": err.Error(),
			})
			continue
		}
		events = append(events, evt)
	}

	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// parseDayFirst parses a DD/MM/YYYY record date, validating ranges.
func parseDayFirst(dateStr string) (day, month, year int, err error) {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", dateStr)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", dateStr)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", dateStr)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", dateStr)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("day out of range in %q", dateStr)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month out of range in %q", dateStr)
	}
	return day, month, year, nil
}
