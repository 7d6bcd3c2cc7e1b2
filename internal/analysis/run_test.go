package analysis

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

func TestRun_EmptyTables(t *testing.T) {
	seg := makeSegment(model.SegmentFirstHalf, 1, 3)
	ticks := fixtureTicks(seg, "abe")

	if _, err := Run(nil, ticks, Config{Tickrate: 128}); !errors.Is(err, ErrNoRoundData) {
		t.Errorf("empty rounds: want ErrNoRoundData, got %v", err)
	}
	if _, err := Run(seg.Rounds, nil, Config{Tickrate: 128}); !errors.Is(err, ErrNoTickData) {
		t.Errorf("empty ticks: want ErrNoTickData, got %v", err)
	}
}

// TestRun_TickrateFallback: a missing tickrate falls back to 128, which the
// fixture ticks are aligned to.
func TestRun_TickrateFallback(t *testing.T) {
	seg := makeSegment(model.SegmentFirstHalf, 1, 3)
	ticks := fixtureTicks(seg, "abe")

	res, err := Run(seg.Rounds, ticks, Config{Tickrate: 0, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tickrate != DefaultTickrate {
		t.Errorf("tickrate: want %d, got %.0f", DefaultTickrate, res.Tickrate)
	}
	if got := res.PlayerSampleCount("abe"); got != 3 {
		t.Errorf("samples for abe at fallback tickrate: want 3, got %d", got)
	}
}

// TestRun_DefaultMarkers: an empty marker list uses the three reference
// markers, giving one collection per segment × marker.
func TestRun_DefaultMarkers(t *testing.T) {
	seg := makeSegment(model.SegmentFirstHalf, 1, 12)
	ticks := fixtureTicks(seg, "abe")

	res, err := Run(seg.Rounds, ticks, Config{Tickrate: 128})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Collections) != 3 {
		t.Errorf("collections: want 3 (one segment, three markers), got %d", len(res.Collections))
	}
	if len(res.Summary) != 1 || res.Summary[0].Player != "abe" {
		t.Errorf("summary should hold abe, got %+v", res.Summary)
	}
}

func TestRun_SchemaAbort(t *testing.T) {
	seg := makeSegment(model.SegmentFirstHalf, 1, 3)
	ticks := fixtureTicks(seg, "abe")
	ticks[1].Side = ""

	if _, err := Run(seg.Rounds, ticks, Config{Tickrate: 128}); !errors.Is(err, ErrTickSchema) {
		t.Errorf("want ErrTickSchema, got %v", err)
	}
}
