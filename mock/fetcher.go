package mock

import (
	"context"

	"github.com/fwojciec/briefly"
)

var _ briefly.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of briefly.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*briefly.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*briefly.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
