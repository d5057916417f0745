package game

import (
	"sort"
	"strings"
)

// Snapshot is the set of records known from one generation run, keyed by
// record ID. It is persisted between runs so newly published games can be
// reported.
type Snapshot struct {
	Games     map[string]*Record `json:"games"`
	UpdatedAt string             `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Games: make(map[string]*Record),
	}
}

// CreateSnapshot builds a snapshot from a list of records.
func CreateSnapshot(records []Record, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt
	for i := range records {
		rec := records[i]
		snap.Games[rec.ID] = &rec
	}
	return snap
}

// DiffResult holds the games present in the current run but absent from
// the previous snapshot.
type DiffResult struct {
	NewGames []Record
}

// Diff compares current records against a previous snapshot and returns
// the games not seen before, sorted by kickoff.
func Diff(previous *Snapshot, current []Record) *DiffResult {
	if previous == nil {
		previous = NewSnapshot()
	}

	result := &DiffResult{NewGames: make([]Record, 0)}
	for _, rec := range current {
		if _, exists := previous.Games[rec.ID]; !exists {
			result.NewGames = append(result.NewGames, rec)
		}
	}

	sort.Slice(result.NewGames, func(i, j int) bool {
		a, b := result.NewGames[i], result.NewGames[j]
		if ka, kb := sortKey(a), sortKey(b); ka != kb {
			return ka < kb
		}
		return a.Opponent < b.Opponent
	})

	return result
}

// sortKey rearranges a DD/MM/YYYY date plus time into a sortable
// YYYYMMDD|HH:MM string. Unparseable dates sort last, lexically.
func sortKey(r Record) string {
	parts := strings.Split(r.DateStr, "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return "~" + r.DateStr + "|" + r.TimeStr
	}
	day, month := parts[0], parts[1]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return parts[2] + month + day + "|" + r.TimeStr
}
