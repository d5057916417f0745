package game

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Tournament rounds, ordered weakest signal first. Preliminary is the
// default when no stronger keyword is found.
const (
	RoundPreliminary  = "Preliminary"
	RoundQualifying   = "Qualifying"
	RoundQuarterfinal = "Quarterfinal"
	RoundSemifinal    = "Semifinal"
	RoundFinal        = "Final"
)

// idNamespace prefixes every game ID so calendar UIDs derived from them
// cannot collide with IDs from other tournaments or tools.
const idNamespace = "mc2026-"

// Candidate is a game extracted from the source document, before
// deduplication. DateStr is DD/MM/YYYY, TimeStr is HH:MM (24-hour) or
// HH:MM AM/PM. RawText is the text span the game was extracted from and
// carries no identity.
type Candidate struct {
	DateStr  string `json:"date"`
	TimeStr  string `json:"time"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue"`
	Round    string `json:"round"`
	RawText  string `json:"raw,omitempty"`
}

// Valid reports whether the candidate has all required fields. Venue and
// Round are allowed to fall back to defaults; date, time, and opponent
// are not.
func (c Candidate) Valid() bool {
	return c.DateStr != "" && c.TimeStr != "" && c.Opponent != ""
}

// Record is a deduplicated candidate with its stable identifier.
type Record struct {
	Candidate
	ID string `json:"id"`
}

// GenerateID derives the deterministic identifier for a game. Identical
// (date, time, opponent, venue, round) tuples always hash to the same ID
// across runs and process restarts; RawText is deliberately excluded.
func GenerateID(dateStr, timeStr, opponent, venue, round string) string {
	sum := md5.Sum([]byte(dateStr + "-" + timeStr + "-" + opponent + "-" + venue + "-" + round))
	return idNamespace + fmt.Sprintf("%x", sum)[:12]
}

// dedupeKey builds the case-insensitive identity key used to collapse
// duplicate candidates.
func dedupeKey(c Candidate) string {
	return strings.ToLower(c.DateStr) + "|" + strings.ToLower(c.TimeStr) + "|" + strings.ToLower(c.Opponent)
}

// Dedupe collapses candidates to a unique set of records. Candidates with
// the same normalized (date, time, opponent) key collapse to one record,
// first seen in scan order wins. Invalid candidates are dropped.
func Dedupe(candidates []Candidate) []Record {
	seen := make(map[string]bool, len(candidates))
	records := make([]Record, 0, len(candidates))

	for _, c := range candidates {
		if !c.Valid() {
			continue
		}
		key := dedupeKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		records = append(records, Record{
			Candidate: c,
			ID:        GenerateID(c.DateStr, c.TimeStr, c.Opponent, c.Venue, c.Round),
		})
	}

	return records
}
