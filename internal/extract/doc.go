// Package extract provides pure field extractors over text spans: game
// date, kickoff time, opponent, venue, and tournament round. Extractors
// never fail hard; a miss is reported as a boolean so the scanner can
// treat the field as absent. Each hit carries the name of the pattern
// that matched, for troubleshooting tie-breaks between strategies.
package extract
