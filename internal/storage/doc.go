// Package storage persists the artifacts of a generation run: the game
// snapshot used to report newly published games on the next run, and the
// emitted calendar file itself. The calendar is fully regenerated every
// run and written atomically, never patched in place.
package storage
