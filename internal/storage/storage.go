package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkleven/puckcal/internal/game"
)

// Storage handles persistence of game snapshots under one data
// directory.
type Storage struct {
	dataDir string
}

// New creates a Storage instance, expanding a leading ~ and creating the
// directory if needed.
func New(dataDir string) (*Storage, error) {
	expanded, err := ExpandHome(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(expanded, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Storage{dataDir: expanded}, nil
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

func (s *Storage) snapshotPath(teamCode string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", strings.ToUpper(teamCode)))
}

// LoadSnapshot loads the previous run's snapshot for a team. A missing
// file yields an empty snapshot, not an error.
func (s *Storage) LoadSnapshot(teamCode string) (*game.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(teamCode))
	if err != nil {
		if os.IsNotExist(err) {
			return game.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot game.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Games == nil {
		snapshot.Games = make(map[string]*game.Record)
	}
	return &snapshot, nil
}

// SaveSnapshot writes the current run's records as the new snapshot.
func (s *Storage) SaveSnapshot(records []game.Record, teamCode string) error {
	snapshot := game.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath(teamCode), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// WriteCalendar writes the emitted calendar document atomically: a temp
// file in the target directory, then a rename. Subscribers never observe
// a half-written file.
func WriteCalendar(path, document string) error {
	expanded, err := ExpandHome(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(expanded)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".puckcal-*.ics")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, expanded); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing calendar: %w", err)
	}
	return nil
}
