package game

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id1 := GenerateID("06/02/2026", "20:00", "TBD", "Milano Cortina 2026", RoundPreliminary)
	id2 := GenerateID("06/02/2026", "20:00", "TBD", "Milano Cortina 2026", RoundPreliminary)

	if id1 != id2 {
		t.Errorf("GenerateID should be deterministic, got %s vs %s", id1, id2)
	}
	if !strings.HasPrefix(id1, "mc2026-") {
		t.Errorf("expected namespace prefix, got %s", id1)
	}
	if len(id1) != len("mc2026-")+12 {
		t.Errorf("expected 12 hex chars after prefix, got %s", id1)
	}

	other := GenerateID("06/02/2026", "20:00", "TBD", "Milano Cortina 2026", RoundFinal)
	if other == id1 {
		t.Error("changing round should change the ID")
	}
}

func TestDedupe(t *testing.T) {
	candidates := []Candidate{
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: "Czechia", Venue: "Milano Santagiulia Ice Hockey Arena", Round: RoundPreliminary, RawText: "row one"},
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: "czechia", Venue: "Milano Santagiulia Ice Hockey Arena", Round: RoundPreliminary, RawText: "row two"},
		{DateStr: "08/02/2026", TimeStr: "13:10", Opponent: "Finland", Venue: "Milano Rho Ice Hockey Arena", Round: RoundPreliminary},
	}

	records := Dedupe(candidates)
	if len(records) != 2 {
		t.Fatalf("expected 2 records after dedup, got %d", len(records))
	}

	// First-seen wins: the surviving duplicate keeps "row one".
	if records[0].RawText != "row one" {
		t.Errorf("expected first-seen candidate to survive, got raw %q", records[0].RawText)
	}
	if records[0].Opponent != "Czechia" {
		t.Errorf("expected opponent Czechia, got %q", records[0].Opponent)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	candidates := []Candidate{
		{DateStr: "12/02/2026", TimeStr: "16:40", Opponent: "Czechia", Venue: "Milano Santagiulia Ice Hockey Arena", Round: RoundQuarterfinal},
	}

	first := Dedupe(candidates)
	if len(first) != 1 {
		t.Fatalf("expected 1 record, got %d", len(first))
	}

	again := Dedupe([]Candidate{first[0].Candidate})
	if len(again) != 1 {
		t.Fatalf("expected 1 record on second pass, got %d", len(again))
	}
	if again[0].ID != first[0].ID {
		t.Errorf("dedupe should be idempotent, IDs differ: %s vs %s", first[0].ID, again[0].ID)
	}
}

func TestDedupeDropsInvalid(t *testing.T) {
	candidates := []Candidate{
		{DateStr: "06/02/2026", TimeStr: "", Opponent: "Sweden"},
		{DateStr: "", TimeStr: "20:00", Opponent: "Sweden"},
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: ""},
	}
	if records := Dedupe(candidates); len(records) != 0 {
		t.Errorf("expected invalid candidates to be dropped, got %d records", len(records))
	}
}

func TestDiff(t *testing.T) {
	existing := Dedupe([]Candidate{
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: "Czechia", Venue: "Milano Santagiulia Ice Hockey Arena", Round: RoundPreliminary},
	})
	snap := CreateSnapshot(existing, "2026-01-20T00:00:00Z")

	current := Dedupe([]Candidate{
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: "Czechia", Venue: "Milano Santagiulia Ice Hockey Arena", Round: RoundPreliminary},
		{DateStr: "08/02/2026", TimeStr: "13:10", Opponent: "Finland", Venue: "Milano Rho Ice Hockey Arena", Round: RoundPreliminary},
		{DateStr: "07/02/2026", TimeStr: "13:10", Opponent: "Sweden", Venue: "Milano Rho Ice Hockey Arena", Round: RoundPreliminary},
	})

	diff := Diff(snap, current)
	if len(diff.NewGames) != 2 {
		t.Fatalf("expected 2 new games, got %d", len(diff.NewGames))
	}
	// Sorted by kickoff: Feb 7 before Feb 8.
	if diff.NewGames[0].Opponent != "Sweden" || diff.NewGames[1].Opponent != "Finland" {
		t.Errorf("expected new games sorted by date, got %s then %s",
			diff.NewGames[0].Opponent, diff.NewGames[1].Opponent)
	}
}

func TestDiffNilPrevious(t *testing.T) {
	current := Dedupe([]Candidate{
		{DateStr: "06/02/2026", TimeStr: "20:00", Opponent: "Czechia"},
	})
	diff := Diff(nil, current)
	if len(diff.NewGames) != 1 {
		t.Errorf("expected all games new with nil previous, got %d", len(diff.NewGames))
	}
}
