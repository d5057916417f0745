// Package cli wires the extraction pipeline into the puckcal command:
// fetch the schedule, scan it for the tracked team's games, deduplicate,
// materialize, and write the calendar file. Exit code 2 signals that new
// games appeared since the previous run.
package cli
