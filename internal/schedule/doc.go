// Package schedule turns a fetched schedule document into game
// candidates for the tracked team. HTML documents go through an ordered
// cascade of extraction strategies (tables, labeled containers, JSON-LD
// metadata, then a free-text fallback that only runs when everything else
// came up empty). The IIHF JSON feed bypasses the cascade and is read
// directly from its typed fields. A scan that produces zero candidates is
// a distinct failure (ErrNoGames), never a silent empty result.
package schedule
