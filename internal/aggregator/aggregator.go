// Package aggregator reads recent sessions from the store to produce the
// focus-mode input (ranked weak digraphs + problem chars) and the
// ghost-racer timings for a given source. Neither result is persisted;
// both are recomputed from the store on demand.
package aggregator

import (
	"context"

	"github.com/google/uuid"

	"github.com/keytrainer/keytrainer/internal/model"
)

// Store is the subset of store.Store the aggregator depends on.
type Store interface {
	FocusData(ctx context.Context, nSessions int) (model.FocusData, error)
	GhostTimings(ctx context.Context, source string) ([]int, error)
	BestWPMFor(ctx context.Context, source string) (float64, error)
}

// Aggregator derives focus and ghost data from the persistence store.
type Aggregator struct {
	store Store
}

// New constructs an Aggregator backed by store.
func New(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// FocusData returns the ranked weak digraphs and problem chars from the
// most recent window sessions (default 10 when window <= 0).
func (a *Aggregator) FocusData(ctx context.Context, window int) (model.FocusData, error) {
	return a.store.FocusData(ctx, window)
}

// GhostRace bundles the prior best session's timings for source with a
// fresh correlation id, so a session started against this ghost can be
// told apart from a concurrent retry of the same source racing to
// completion.
type GhostRace struct {
	ID      uuid.UUID
	Source  string
	BestWPM float64
	Timings []int
}

// GhostFor loads the ghost-racer data for source. Timings is empty (not
// nil) when no prior session exists for source.
func (a *Aggregator) GhostFor(ctx context.Context, source string) (GhostRace, error) {
	timings, err := a.store.GhostTimings(ctx, source)
	if err != nil {
		return GhostRace{}, err
	}
	best, err := a.store.BestWPMFor(ctx, source)
	if err != nil {
		return GhostRace{}, err
	}
	return GhostRace{
		ID:      uuid.New(),
		Source:  source,
		BestWPM: best,
		Timings: timings,
	}, nil
}
