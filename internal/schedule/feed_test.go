package schedule

import (
	"errors"
	"os"
	"testing"

	"github.com/mkleven/puckcal/internal/game"
)

func TestParseFeed(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_feed.json")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	target := NewTarget("CAN", 2026, KindCodes, 60)
	candidates, err := ParseFeed(data, target)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}

	// Of five entries: one TBD-flagged, one with a TBD opponent, one not
	// involving the tracked team, one already finished. One survives.
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}

	c := candidates[0]
	if c.Opponent != "Czechia" {
		t.Errorf("expected opponent Czechia, got %q", c.Opponent)
	}
	if c.DateStr != "12/02/2026" {
		t.Errorf("expected local date 12/02/2026, got %q", c.DateStr)
	}
	if c.TimeStr != "16:40" {
		t.Errorf("expected local time 16:40, got %q", c.TimeStr)
	}
	if c.Round != game.RoundQuarterfinal {
		t.Errorf("expected Quarterfinal, got %q", c.Round)
	}
	if c.Venue != "Milano Santagiulia Ice Hockey Arena" {
		t.Errorf("unexpected venue %q", c.Venue)
	}
}

func TestParseFeedFallsBackToUTC(t *testing.T) {
	data := []byte(`[{
		"GameNumber": 7,
		"HomeTeam": {"TeamCode": "CAN"},
		"GuestTeam": {"TeamCode": "LAT"},
		"GameDateTime": "not a timestamp",
		"GameDateTimeUTC": "2026-02-10T12:10:00Z",
		"PhaseId": "Preliminary Round - Group A",
		"Venue": "Milano Rho Ice Hockey Arena",
		"Status": "Upcoming",
		"GameIsTBD": false
	}]`)

	target := NewTarget("CAN", 2026, KindCodes, 60)
	candidates, err := ParseFeed(data, target)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	// 12:10 UTC plus the 60-minute host offset.
	if candidates[0].TimeStr != "13:10" {
		t.Errorf("expected reconstructed local time 13:10, got %q", candidates[0].TimeStr)
	}
	if candidates[0].DateStr != "10/02/2026" {
		t.Errorf("unexpected date %q", candidates[0].DateStr)
	}
}

func TestParseFeedSkipsUnparseableEntry(t *testing.T) {
	data := []byte(`[
		{
			"GameNumber": 8,
			"HomeTeam": {"TeamCode": "CAN"},
			"GuestTeam": {"TeamCode": "GER"},
			"GameDateTime": "garbage",
			"GameDateTimeUTC": "also garbage",
			"PhaseId": "Preliminary Round - Group A",
			"Venue": "",
			"Status": "UPCOMING",
			"GameIsTBD": false
		},
		{
			"GameNumber": 9,
			"HomeTeam": {"TeamCode": "CAN"},
			"GuestTeam": {"TeamCode": "SVK"},
			"GameDateTime": "2026-02-13T18:40:00",
			"GameDateTimeUTC": "2026-02-13T17:40:00Z",
			"PhaseId": "Preliminary Round - Group A",
			"Venue": "",
			"Status": "UPCOMING",
			"GameIsTBD": false
		}
	]`)

	target := NewTarget("CAN", 2026, KindCodes, 60)
	candidates, err := ParseFeed(data, target)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected the malformed entry to be skipped, got %d candidates", len(candidates))
	}
	if candidates[0].Opponent != "Slovakia" {
		t.Errorf("unexpected opponent %q", candidates[0].Opponent)
	}
	if candidates[0].Venue != "Milano Cortina 2026" {
		t.Errorf("expected placeholder venue, got %q", candidates[0].Venue)
	}
}

func TestParseFeedEmpty(t *testing.T) {
	data := []byte(`[{
		"GameNumber": 1,
		"HomeTeam": {"TeamCode": "SWE"},
		"GuestTeam": {"TeamCode": "FIN"},
		"GameDateTime": "2026-02-11T12:10:00",
		"GameDateTimeUTC": "2026-02-11T11:10:00Z",
		"PhaseId": "Preliminary Round - Group B",
		"Venue": "",
		"Status": "UPCOMING",
		"GameIsTBD": false
	}]`)

	target := NewTarget("CAN", 2026, KindCodes, 60)
	if _, err := ParseFeed(data, target); !errors.Is(err, ErrNoGames) {
		t.Errorf("expected ErrNoGames, got %v", err)
	}
}

func TestParseFeedBadJSON(t *testing.T) {
	target := NewTarget("CAN", 2026, KindCodes, 60)
	if _, err := ParseFeed([]byte("not json"), target); err == nil {
		t.Error("expected error for malformed feed document")
	}
}
