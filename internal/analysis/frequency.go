package analysis

import (
	"math"
	"sort"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

type posKey [3]float64

// BuildSummary collapses every collected sample into the per-player position
// frequency structure used for the JSON summary. Positions compare by exact
// float equality. Players and positions keep first-seen order, and occurrence
// lists are sorted by (round, time label), so identical inputs serialize to
// byte-identical summaries.
func BuildSummary(collections []MarkerSamples) []model.PlayerSummary {
	type playerAccum struct {
		order []posKey
		count map[posKey]int
		occ   map[posKey][]model.Occurrence
	}

	var playerOrder []string
	accums := make(map[string]*playerAccum)

	for i := range collections {
		ms := &collections[i]
		for _, name := range ms.Players() {
			acc := accums[name]
			if acc == nil {
				acc = &playerAccum{
					count: make(map[posKey]int),
					occ:   make(map[posKey][]model.Occurrence),
				}
				accums[name] = acc
				playerOrder = append(playerOrder, name)
			}
			for _, s := range ms.Samples(name) {
				k := posKey{s.Pos.X, s.Pos.Y, s.Pos.Z}
				if _, seen := acc.count[k]; !seen {
					acc.order = append(acc.order, k)
				}
				acc.count[k]++
				acc.occ[k] = append(acc.occ[k], model.Occurrence{
					Round:      s.RoundNum,
					Side:       s.Side,
					TimeLabel:  ms.Marker.Label,
					RangeLabel: ms.Segment.Label,
				})
			}
		}
	}

	out := make([]model.PlayerSummary, 0, len(playerOrder))
	for _, name := range playerOrder {
		acc := accums[name]
		ps := model.PlayerSummary{Player: name}
		for _, k := range acc.order {
			occurrences := acc.occ[k]
			sort.SliceStable(occurrences, func(i, j int) bool {
				ri, rj := occurrenceRoundKey(occurrences[i].Round), occurrenceRoundKey(occurrences[j].Round)
				if ri != rj {
					return ri < rj
				}
				return occurrences[i].TimeLabel < occurrences[j].TimeLabel
			})
			ps.Positions = append(ps.Positions, model.PositionSummary{
				Position:    k,
				Count:       acc.count[k],
				Occurrences: occurrences,
			})
		}
		out = append(out, ps)
	}
	return out
}

// occurrenceRoundKey orders unknown rounds after every numeric round.
func occurrenceRoundKey(round int) int {
	if round == RoundUnknown {
		return math.MaxInt
	}
	return round
}

// FilterSummary restricts a summary to the single target player.
func FilterSummary(summary []model.PlayerSummary, player string) []model.PlayerSummary {
	var out []model.PlayerSummary
	for _, ps := range summary {
		if ps.Player == player {
			out = append(out, ps)
		}
	}
	return out
}
