// Package fetch retrieves schedule documents over HTTP. The plain
// fetcher sends browser-style headers; the colly-based fallback retries
// stubborn pages with rate limiting and charset detection. Which source
// URL to try next is the caller's decision; this package fetches one
// document at a time.
package fetch
