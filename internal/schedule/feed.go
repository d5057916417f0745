package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mkleven/puckcal/internal/extract"
	"github.com/mkleven/puckcal/internal/game"
	"github.com/mkleven/puckcal/internal/logger"
	"github.com/mkleven/puckcal/internal/team"
)

// feedGame mirrors one entry of the IIHF schedule feed.
type feedGame struct {
	HomeTeam struct {
		TeamCode string `json:"TeamCode"`
	} `json:"HomeTeam"`
	GuestTeam struct {
		TeamCode string `json:"TeamCode"`
	} `json:"GuestTeam"`
	GameDateTime    string `json:"GameDateTime"`
	GameDateTimeUTC string `json:"GameDateTimeUTC"`
	PhaseID         string `json:"PhaseId"`
	Venue           string `json:"Venue"`
	Status          string `json:"Status"`
	GameIsTBD       bool   `json:"GameIsTBD"`
	GameNumber      int    `json:"GameNumber"`
}

// ParseFeed extracts candidates for the tracked team from the JSON feed,
// bypassing the HTML strategy cascade entirely. Skipped outright: games
// flagged TBD, games not in upcoming status, and games whose resolved
// opponent code is itself "TBD". Entries with unparseable timestamps are
// logged and skipped; the batch continues. Returns ErrNoGames when
// nothing survives.
func ParseFeed(data []byte, t Target) ([]game.Candidate, error) {
	var games []feedGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decoding schedule feed: %w", err)
	}

	candidates := make([]game.Candidate, 0)
	for _, fg := range games {
		if c, ok := candidateFromFeed(fg, t); ok {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoGames
	}
	return candidates, nil
}

func candidateFromFeed(fg feedGame, t Target) (game.Candidate, bool) {
	if fg.GameIsTBD {
		return game.Candidate{}, false
	}
	if !strings.EqualFold(fg.Status, "upcoming") {
		return game.Candidate{}, false
	}

	home := strings.ToUpper(fg.HomeTeam.TeamCode)
	guest := strings.ToUpper(fg.GuestTeam.TeamCode)

	var opponentCode string
	switch t.Code {
	case home:
		opponentCode = guest
	case guest:
		opponentCode = home
	default:
		return game.Candidate{}, false
	}
	if opponentCode == "TBD" {
		return game.Candidate{}, false
	}

	local, err := feedLocalTime(fg, t)
	if err != nil {
		logger.Warn("skipping feed entry with unparseable timestamps", logger.Fields{
			"game":  fg.GameNumber,
			"error": err.Error(),
		})
		return game.Candidate{}, false
	}

	venue := extract.DefaultVenue
	if m, ok := extract.Venue(fg.Venue); ok {
		venue = m.Value
	} else if v := strings.TrimSpace(fg.Venue); v != "" {
		venue = v
	}

	round := game.RoundPreliminary
	if m, ok := extract.Round(fg.PhaseID); ok {
		round = m.Value
	}

	return game.Candidate{
		DateStr:  local.Format("02/01/2006"),
		TimeStr:  local.Format("15:04"),
		Opponent: team.Expand(opponentCode),
		Venue:    venue,
		Round:    round,
		RawText:  fmt.Sprintf("game %d: %s vs %s (%s)", fg.GameNumber, home, guest, fg.PhaseID),
	}, true
}

// feedLocalTime prefers the feed's local timestamp and reconstructs it
// from the UTC one plus the fixed host offset when the local field is
// missing or malformed.
func feedLocalTime(fg feedGame, t Target) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, fg.GameDateTime); err == nil {
			return ts, nil
		}
	}

	utc, err := time.Parse(time.RFC3339, fg.GameDateTimeUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("local %q and UTC %q both unparseable", fg.GameDateTime, fg.GameDateTimeUTC)
	}
	return utc.UTC().Add(time.Duration(t.OffsetMinutes) * time.Minute), nil
}
