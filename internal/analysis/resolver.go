package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// DefaultTickrate is assumed when the demo header does not carry a tickrate.
const DefaultTickrate = 128

var (
	// ErrNoRoundData means the round table is empty; nothing can be sampled.
	ErrNoRoundData = errors.New("no round data")
	// ErrNoTickData means the tick table is empty; nothing can be sampled.
	ErrNoTickData = errors.New("no tick data")
	// ErrTickSchema means the tick table lacks required fields. The resolver
	// cannot proceed and the whole run must abort.
	ErrTickSchema = errors.New("tick table missing required fields")
)

type tickKey struct {
	roundNum int
	tick     int
}

// Resolver answers exact-tick position lookups for (round, marker) pairs.
// Resolution is an exact match on (round, tick) — never nearest-tick or
// interpolated.
type Resolver struct {
	index    map[tickKey][]model.TickRecord
	tickrate float64
}

// NewResolver validates the tick table and builds the exact-tick index.
// A record without a player name or side makes the table structurally
// unusable and yields ErrTickSchema.
func NewResolver(ticks []model.TickRecord, tickrate float64) (*Resolver, error) {
	if len(ticks) == 0 {
		return nil, ErrNoTickData
	}
	index := make(map[tickKey][]model.TickRecord, len(ticks))
	for i, t := range ticks {
		if t.Name == "" || t.Side == "" {
			return nil, fmt.Errorf("tick record %d: %w", i, ErrTickSchema)
		}
		k := tickKey{t.RoundNum, t.Tick}
		index[k] = append(index[k], t)
	}
	return &Resolver{index: index, tickrate: tickrate}, nil
}

// OffsetTicks converts a marker offset to whole ticks at the demo tickrate.
func (r *Resolver) OffsetTicks(m model.TimeMarker) int {
	return int(math.Round(m.Seconds * r.tickrate))
}

// TargetTick computes the sample tick for one round and marker: the marker
// offset before the round end, clamped so it never lands before the round
// start. ok is false when the round lacks a usable start or end boundary,
// in which case the round contributes no samples.
func (r *Resolver) TargetTick(round model.RoundRecord, m model.TimeMarker) (int, bool) {
	start, ok := round.StartBoundary()
	if !ok {
		return 0, false
	}
	end, ok := round.EndBoundary()
	if !ok {
		return 0, false
	}
	target := end - r.OffsetTicks(m)
	if target < start {
		target = start
	}
	return target, true
}

// PlayerSample pairs one resolved Sample with the player it belongs to.
type PlayerSample struct {
	Name   string
	Sample model.Sample
}

// Resolve returns one sample per player present at the round's target tick.
// Rounds without usable boundaries or without an exact tick match contribute
// nothing; records with a missing coordinate are dropped individually.
func (r *Resolver) Resolve(round model.RoundRecord, m model.TimeMarker) []PlayerSample {
	target, ok := r.TargetTick(round, m)
	if !ok {
		return nil
	}
	records := r.index[tickKey{round.Num, target}]
	samples := make([]PlayerSample, 0, len(records))
	for _, rec := range records {
		pos, ok := rec.Position()
		if !ok {
			continue
		}
		samples = append(samples, PlayerSample{
			Name:   rec.Name,
			Sample: model.Sample{Pos: pos, RoundNum: round.Num, Side: rec.Side},
		})
	}
	return samples
}
