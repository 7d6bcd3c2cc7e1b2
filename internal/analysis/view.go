package analysis

import (
	"strconv"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// HeatmapData is the renderer input for one player in one (segment, marker)
// collection: the raw coordinate list plus per-XY round labels.
type HeatmapData struct {
	Segment model.RoundSegment
	Marker  model.TimeMarker
	Side    string // dominant side across the samples

	Points      []model.Vec3
	RoundLabels map[[2]float64][]string // XY → re-based round labels
}

// BuildHeatmapData prepares the heatmap input for one player. ok is false
// when the player has no samples in the collection.
func BuildHeatmapData(ms *MarkerSamples, player string) (HeatmapData, bool) {
	samples := ms.Samples(player)
	if len(samples) == 0 {
		return HeatmapData{}, false
	}
	hd := HeatmapData{
		Segment:     ms.Segment,
		Marker:      ms.Marker,
		Side:        dominantSide(samples),
		RoundLabels: make(map[[2]float64][]string),
	}
	for _, s := range samples {
		hd.Points = append(hd.Points, s.Pos)
		key := [2]float64{s.Pos.X, s.Pos.Y}
		hd.RoundLabels[key] = append(hd.RoundLabels[key], RoundLabel(RebasedRound(ms.Segment, s.RoundNum)))
	}
	return hd, true
}

// OverlayPoint is one entry of the per-segment combined view: a sample
// annotated with its marker and re-based round label.
type OverlayPoint struct {
	Point      model.Vec3
	TimeLabel  string
	Display    string
	Color      string
	Side       string
	RoundLabel string
}

// BuildOverlayData collects the player's samples for one segment across all
// markers, annotated for the combined scatter render. The returned side is
// the dominant side across every contributing sample.
func BuildOverlayData(collections []MarkerSamples, seg model.RoundSegment, player string) ([]OverlayPoint, string) {
	var points []OverlayPoint
	var all []model.Sample
	for i := range collections {
		ms := &collections[i]
		if ms.Segment.Name != seg.Name {
			continue
		}
		for _, s := range ms.Samples(player) {
			points = append(points, OverlayPoint{
				Point:      s.Pos,
				TimeLabel:  ms.Marker.Label,
				Display:    ms.Marker.Display,
				Color:      ms.Marker.Color,
				Side:       s.Side,
				RoundLabel: RoundLabel(RebasedRound(seg, s.RoundNum)),
			})
			all = append(all, s)
		}
	}
	return points, dominantSide(all)
}

// RoundLabel formats a re-based round number for annotations; unknown rounds
// render as "?".
func RoundLabel(round int) string {
	if round == RoundUnknown {
		return "?"
	}
	return strconv.Itoa(round)
}

// dominantSide returns the most frequent non-empty side among the samples,
// "Unknown" when there is none. Ties break toward the side seen first.
func dominantSide(samples []model.Sample) string {
	counts := make(map[string]int)
	best, bestCount := "Unknown", 0
	for _, s := range samples {
		if s.Side == "" {
			continue
		}
		counts[s.Side]++
		if counts[s.Side] > bestCount {
			best, bestCount = s.Side, counts[s.Side]
		}
	}
	return best
}
