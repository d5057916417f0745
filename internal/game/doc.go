// Package game defines the schedule data model: extraction candidates,
// canonical deduplicated records with deterministic content-derived IDs,
// and snapshot-based diffing of games across runs. IDs are derived purely
// from game content, so re-scanning an unchanged schedule always yields
// the same identities.
package game
