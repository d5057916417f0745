// Package ics materializes canonical game records into calendar events
// with UTC instants and serializes them as an iCalendar (RFC 5545)
// document. Local kickoff times are converted to UTC with the fixed
// host-country offset: the tournament window falls entirely inside a
// non-DST period, so a single offset is correct for every game. That
// assumption does not generalize to other tournaments.
package ics
