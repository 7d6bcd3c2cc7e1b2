package analysis

import "github.com/Jearnest94/NadeStacked/internal/model"

// MarkerSamples holds, for one (segment, marker) pair, each player's resolved
// samples in round iteration order. Player order is first-seen so identical
// inputs always produce identical output ordering.
type MarkerSamples struct {
	Segment model.RoundSegment
	Marker  model.TimeMarker

	players  []string
	byPlayer map[string][]model.Sample
}

func (ms *MarkerSamples) add(name string, s model.Sample) {
	if _, seen := ms.byPlayer[name]; !seen {
		ms.players = append(ms.players, name)
	}
	ms.byPlayer[name] = append(ms.byPlayer[name], s)
}

// Players returns the player names in first-seen order.
func (ms *MarkerSamples) Players() []string {
	return ms.players
}

// Samples returns the player's samples in round iteration order.
func (ms *MarkerSamples) Samples(name string) []model.Sample {
	return ms.byPlayer[name]
}

// SampleCount returns the total number of samples across all players.
func (ms *MarkerSamples) SampleCount() int {
	n := 0
	for _, samples := range ms.byPlayer {
		n += len(samples)
	}
	return n
}

// Collect runs the resolver over every segment × marker combination and folds
// the resolved samples into per-player collections. The nested iteration is
// fully deterministic: segments in partition order, markers in configured
// order, rounds in table order.
func Collect(segments []model.RoundSegment, markers []model.TimeMarker, r *Resolver) []MarkerSamples {
	var out []MarkerSamples
	for _, seg := range segments {
		if len(seg.Rounds) == 0 {
			continue
		}
		for _, marker := range markers {
			ms := MarkerSamples{
				Segment:  seg,
				Marker:   marker,
				byPlayer: make(map[string][]model.Sample),
			}
			for _, round := range seg.Rounds {
				for _, ps := range r.Resolve(round, marker) {
					ms.add(ps.Name, ps.Sample)
				}
			}
			out = append(out, ms)
		}
	}
	return out
}

// RoundUnknown marks a sample whose round precedes its segment's first round
// and therefore cannot be re-based.
const RoundUnknown = -1

// RebasedRound re-bases an original round number to be 1-indexed within its
// segment. First- and second-half rounds wrap back into 1–12; overtime round
// numbers are not wrapped.
func RebasedRound(seg model.RoundSegment, roundNum int) int {
	if len(seg.Rounds) == 0 {
		return RoundUnknown
	}
	first := seg.Rounds[0].Num
	if roundNum < first {
		return RoundUnknown
	}
	adjusted := roundNum - first + 1
	if adjusted > firstHalfEnd &&
		(seg.Name == model.SegmentFirstHalf || seg.Name == model.SegmentSecondHalf) {
		adjusted = (adjusted-1)%firstHalfEnd + 1
	}
	return adjusted
}
