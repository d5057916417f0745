package fetch

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher is the fallback retriever. Colly handles charset
// detection and per-domain politeness, which gets further with pages
// that reject the plain client.
type CollyFetcher struct {
	delay   time.Duration
	timeout time.Duration
}

// NewColly creates a fallback fetcher with default pacing.
func NewColly() *CollyFetcher {
	return &CollyFetcher{
		delay:   1 * time.Second,
		timeout: Timeout,
	}
}

// Fetch retrieves one URL through a fresh collector.
func (c *CollyFetcher) Fetch(rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.UserAgent(UserAgent),
		colly.DetectCharset(),
	)
	collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       c.delay,
	})
	collector.SetRequestTimeout(c.timeout)

	var body []byte
	var fetchErr error
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := collector.Visit(rawURL); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, fetchErr)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("fetching %s: empty response", rawURL)
	}
	return body, nil
}
