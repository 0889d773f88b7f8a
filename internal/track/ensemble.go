package track

import (
	"context"
	"sync"

	"github.com/Clayten/blackholes/internal/blackhole"
)

// Ensemble tracks several independent holes concurrently with one config.
type Ensemble struct {
	holes []*blackhole.BlackHole
}

func NewEnsemble(holes ...*blackhole.BlackHole) *Ensemble {
	return &Ensemble{holes: holes}
}

// Run returns one result per hole, in the order the holes were given. The
// first error from any member is returned once every member has stopped.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.holes))
	errs := make([]error, len(e.holes))

	var wg sync.WaitGroup
	for i, hole := range e.holes {
		wg.Add(1)
		go func(idx int, h *blackhole.BlackHole) {
			defer wg.Done()
			results[idx], errs[idx] = New(h).Run(ctx, cfg)
		}(i, hole)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
