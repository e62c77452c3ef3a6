package briefly

import "context"

// FetchResult holds a fetched document. It only lives for the duration of
// a single pipeline run.
type FetchResult struct {
	// URL is the final URL after redirects.
	URL         string
	StatusCode  int
	ContentType string

	// Body is the document decoded to UTF-8.
	Body string
}

// Fetcher retrieves raw documents over the network.
type Fetcher interface {
	// Fetch makes a single attempt to retrieve the URL. Implementations
	// return a *FetchError for non-success statuses and never retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
