// Package team maps IIHF three-letter country codes to display names and
// normalizes alternate spellings of national team names to one canonical
// form. Lookups are case-insensitive and total: unknown input passes
// through unchanged.
package team
