// Package config loads the YAML configuration driving a generation run:
// the tracked team, the schedule sources with their extraction kinds,
// the tournament clock parameters, and the output locations. Missing
// fields fall back to the Milano Cortina 2026 defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source is one place a schedule can be fetched from. Kind selects the
// extraction style: "codes" for IIHF-style pages using three-letter team
// codes, "prose" for pages spelling out team names, "feed" for the JSON
// schedule feed. An empty Kind is inferred from the URL.
type Source struct {
	URL  string `yaml:"url"`
	Kind string `yaml:"kind,omitempty"`
}

// Config holds one deployment's settings.
type Config struct {
	TeamCode         string   `yaml:"team_code"`
	Year             int      `yaml:"year"`
	UTCOffsetMinutes int      `yaml:"utc_offset_minutes"`
	CalendarName     string   `yaml:"calendar_name"`
	OutputPath       string   `yaml:"output_path"`
	DataDir          string   `yaml:"data_dir"`
	Sources          []Source `yaml:"sources"`
}

// Default returns the Milano Cortina 2026 configuration for Canada.
func Default() *Config {
	return &Config{
		TeamCode:         "CAN",
		Year:             2026,
		UTCOffsetMinutes: 60, // CET; the tournament window has no DST transition
		CalendarName:     "Canada Olympic Hockey 2026",
		OutputPath:       "canada-hockey.ics",
		DataDir:          "~/.local/share/puckcal",
		Sources: []Source{
			{URL: "https://www.iihf.com/en/events/2026/olympic-m/schedule", Kind: "codes"},
			{URL: "https://www.olympics.com/en/milano-cortina-2026/schedule/ice-hockey", Kind: "prose"},
		},
	}
}

// Load reads a YAML config file, layering it over the defaults. An empty
// path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.TeamCode = strings.ToUpper(strings.TrimSpace(c.TeamCode))
	if len(c.TeamCode) != 3 {
		return fmt.Errorf("team_code must be a three-letter code, got %q", c.TeamCode)
	}
	if c.Year < 2000 || c.Year > 2100 {
		return fmt.Errorf("year out of range: %d", c.Year)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}
	for i := range c.Sources {
		if c.Sources[i].URL == "" {
			return fmt.Errorf("source %d has no url", i)
		}
		if c.Sources[i].Kind == "" {
			c.Sources[i].Kind = inferKind(c.Sources[i].URL)
		}
		switch c.Sources[i].Kind {
		case "codes", "prose", "feed":
		default:
			return fmt.Errorf("source %d has unknown kind %q", i, c.Sources[i].Kind)
		}
	}
	return nil
}

// inferKind keeps old configs without explicit kinds working: IIHF pages
// use team codes, JSON endpoints are feeds, everything else is prose.
func inferKind(url string) string {
	lower := strings.ToLower(url)
	if strings.Contains(lower, ".json") || strings.Contains(lower, "/api/") {
		return "feed"
	}
	if strings.Contains(lower, "iihf") {
		return "codes"
	}
	return "prose"
}
