package mock

import (
	"context"

	"github.com/fwojciec/briefly"
)

var _ briefly.Structurer = (*Structurer)(nil)

// Structurer is a mock implementation of briefly.Structurer.
type Structurer struct {
	StructureFn func(ctx context.Context, text string, variant briefly.Variant) (*briefly.Result, error)
}

func (s *Structurer) Structure(ctx context.Context, text string, variant briefly.Variant) (*briefly.Result, error) {
	return s.StructureFn(ctx, text, variant)
}
