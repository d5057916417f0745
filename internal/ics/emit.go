package ics

import (
	"fmt"
	"strings"
	"time"
)

// Metadata is the calendar-level information attached to an emission.
type Metadata struct {
	Name      string
	SourceURL string
}

// Emit serializes events into one iCalendar document. Output is
// byte-identical for the same inputs except for the DTSTAMP, CREATED,
// and LAST-MODIFIED fields, which carry the generation wall clock.
// Fails outright on an empty event list; a partial or empty calendar is
// never produced.
func Emit(events []Event, meta Metadata) (string, error) {
	if len(events) == 0 {
		return "", ErrNoEvents
	}

	now := time.Now().UTC()

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//puckcal//puckcal//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escape(meta.Name)))
	b.WriteString("X-WR-TIMEZONE:UTC\r\n")

	for _, evt := range events {
		writeEvent(&b, evt, meta, now)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String(), nil
}

func writeEvent(b *strings.Builder, evt Event, meta Metadata, now time.Time) {
	b.WriteString("BEGIN:VEVENT\r\n")
	b.WriteString(fmt.Sprintf("UID:%s\r\n", evt.UID))
	b.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatTime(now)))
	b.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatTime(evt.Start)))
	b.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatTime(evt.End)))
	b.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escape(evt.Summary)))
	b.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escape(evt.Description)))
	b.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escape(evt.Location)))
	if meta.SourceURL != "" {
		b.WriteString(fmt.Sprintf("URL:%s\r\n", meta.SourceURL))
	}
	b.WriteString(fmt.Sprintf("STATUS:%s\r\n", evt.Status))
	b.WriteString("SEQUENCE:0\r\n")
	b.WriteString("TRANSP:OPAQUE\r\n")
	// CATEGORIES takes a comma-separated list; the comma is structural
	// here, not escaped.
	b.WriteString(fmt.Sprintf("CATEGORIES:%s\r\n", evt.Categories))
	b.WriteString(fmt.Sprintf("CREATED:%s\r\n", formatTime(now)))
	b.WriteString(fmt.Sprintf("LAST-MODIFIED:%s\r\n", formatTime(now)))
	b.WriteString("END:VEVENT\r\n")
}

// formatTime renders an iCalendar UTC datetime.
func formatTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escape applies RFC 5545 text escaping.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
