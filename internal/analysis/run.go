package analysis

import (
	"github.com/rs/zerolog"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// Config carries the per-run inputs for an analysis.
type Config struct {
	Markers  []model.TimeMarker // empty → DefaultMarkers
	Tickrate float64            // ≤0 → DefaultTickrate, with a warning
	Log      zerolog.Logger
}

// Result is everything one analysis run produces in memory. It is owned by
// the single invocation that built it and holds no shared state.
type Result struct {
	Segments    []model.RoundSegment
	Collections []MarkerSamples
	Summary     []model.PlayerSummary
	Tickrate    float64
}

// Run executes the full sampling pipeline: partition rounds into segments,
// resolve the sample tick for every segment × marker × round, fold samples
// into per-player collections, and build the structured summary. Structural
// input errors abort the run; rounds with unusable boundaries are skipped
// individually inside the resolver.
func Run(rounds []model.RoundRecord, ticks []model.TickRecord, cfg Config) (*Result, error) {
	if len(rounds) == 0 {
		return nil, ErrNoRoundData
	}
	if len(ticks) == 0 {
		return nil, ErrNoTickData
	}

	tickrate := cfg.Tickrate
	if tickrate <= 0 {
		cfg.Log.Warn().Msg("tickrate not found in demo header, assuming 128")
		tickrate = DefaultTickrate
	}
	markers := cfg.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers()
	}

	resolver, err := NewResolver(ticks, tickrate)
	if err != nil {
		return nil, err
	}

	segments := PartitionRounds(rounds)
	collections := Collect(segments, markers, resolver)

	return &Result{
		Segments:    segments,
		Collections: collections,
		Summary:     BuildSummary(collections),
		Tickrate:    tickrate,
	}, nil
}

// PlayerSampleCount returns the player's total sample count across all
// collections.
func (r *Result) PlayerSampleCount(player string) int {
	n := 0
	for i := range r.Collections {
		n += len(r.Collections[i].Samples(player))
	}
	return n
}
