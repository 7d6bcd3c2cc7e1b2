package model

// Vec3 is a 3D world-space position in Hammer units.
type Vec3 struct{ X, Y, Z float64 }

// ---- Tables emitted by the parser ----

// RoundRecord is one row of the round table. Boundary ticks are optional:
// depending on the demo source any of the four events may be missing, so
// presence is tracked with pointers rather than zero values.
type RoundRecord struct {
	Num         int
	FreezeEnd   *int
	Start       *int
	End         *int
	EndOfficial *int
}

// StartBoundary returns the tick treated as the round start, preferring the
// freeze-time end over the round-start event.
func (r RoundRecord) StartBoundary() (int, bool) {
	if r.FreezeEnd != nil {
		return *r.FreezeEnd, true
	}
	if r.Start != nil {
		return *r.Start, true
	}
	return 0, false
}

// EndBoundary returns the tick treated as the round end, preferring the
// round-end event over the official end.
func (r RoundRecord) EndBoundary() (int, bool) {
	if r.End != nil {
		return *r.End, true
	}
	if r.EndOfficial != nil {
		return *r.EndOfficial, true
	}
	return 0, false
}

// TickRecord is one row of the tick table: one player's state at one tick.
// Coordinates are optional; a record missing any coordinate is skipped
// during sampling.
type TickRecord struct {
	RoundNum int
	Tick     int
	Name     string
	Side     string // "ct" or "t"
	X, Y, Z  *float64
}

// Position returns the recorded position, false when any coordinate is absent.
func (t TickRecord) Position() (Vec3, bool) {
	if t.X == nil || t.Y == nil || t.Z == nil {
		return Vec3{}, false
	}
	return Vec3{X: *t.X, Y: *t.Y, Z: *t.Z}, true
}

// RawDemo bundles everything the parser extracts from one demo file.
type RawDemo struct {
	DemoHash string
	MapName  string
	Tickrate float64 // 0 when the header does not carry one
	Rounds   []RoundRecord
	Ticks    []TickRecord
}

// ---- Sampling configuration ----

// TimeMarker is one configured sampling moment. Seconds is the offset
// subtracted from the round-end tick when resolving the sample tick, even
// though the display labels read as clock time remaining.
type TimeMarker struct {
	Label   string  // filename label, e.g. "1m48s"
	Seconds float64 // seconds subtracted from the round end
	Display string  // title label, e.g. "1:48"
	Color   string  // overlay legend color
}

// SegmentName identifies one of the fixed round groupings.
type SegmentName string

const (
	SegmentFirstHalf  SegmentName = "first_half"
	SegmentSecondHalf SegmentName = "second_half"
	SegmentOvertime   SegmentName = "overtime"
)

// RoundSegment is a contiguous run of rounds used to bucket samples.
// Rounds keeps the original table order.
type RoundSegment struct {
	Name   SegmentName
	Label  string // human label, e.g. "Rounds 1-12 (First Half)"
	Rounds []RoundRecord
}

// ---- Resolved samples ----

// Sample is one resolved player position at one (segment, marker, round)
// triple. Immutable once emitted by the resolver.
type Sample struct {
	Pos      Vec3
	RoundNum int
	Side     string
}

// ---- Structured summary (JSON output) ----

// Occurrence records one appearance of a position in the summary.
type Occurrence struct {
	Round      int    `json:"round"`
	Side       string `json:"side"`
	TimeLabel  string `json:"time_label"`
	RangeLabel string `json:"range_label"`
}

// PositionSummary is the frequency entry for one distinct position.
type PositionSummary struct {
	Position    [3]float64   `json:"position"`
	Count       int          `json:"count"`
	Occurrences []Occurrence `json:"occurrences"`
}

// PlayerSummary is the per-player slice of the structured summary.
type PlayerSummary struct {
	Player    string            `json:"player"`
	Positions []PositionSummary `json:"positions"`
}

// ---- Stored analysis runs ----

// AnalysisRecord is a lightweight row describing one stored analysis run.
type AnalysisRecord struct {
	DemoHash     string
	Player       string
	MapName      string
	Tickrate     float64
	AnalyzedAt   string
	SegmentCount int
	SampleCount  int
}
