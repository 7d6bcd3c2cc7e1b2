package analysis

import (
	"testing"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// makeRoundList builds n sequential rounds numbered 1..n with simple
// boundaries.
func makeRoundList(n int) []model.RoundRecord {
	rounds := make([]model.RoundRecord, n)
	for i := range rounds {
		freeze := 1000 * (i + 1)
		end := freeze + 5000
		rounds[i] = model.RoundRecord{Num: i + 1, FreezeEnd: &freeze, End: &end}
	}
	return rounds
}

func TestPartitionRounds_Empty(t *testing.T) {
	if got := PartitionRounds(nil); got != nil {
		t.Errorf("expected no segments for empty round list, got %d", len(got))
	}
}

// TestPartitionRounds_TenRounds: N=10 → only first_half, rounds 1-10.
func TestPartitionRounds_TenRounds(t *testing.T) {
	segs := PartitionRounds(makeRoundList(10))
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Name != model.SegmentFirstHalf {
		t.Errorf("expected first_half, got %s", segs[0].Name)
	}
	if len(segs[0].Rounds) != 10 {
		t.Errorf("expected 10 rounds, got %d", len(segs[0].Rounds))
	}
	if segs[0].Label != "Rounds 1-10 (First Half)" {
		t.Errorf("unexpected label %q", segs[0].Label)
	}
}

// TestPartitionRounds_Regulation: N=24 → two halves of 12, no overtime.
func TestPartitionRounds_Regulation(t *testing.T) {
	segs := PartitionRounds(makeRoundList(24))
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Name != model.SegmentFirstHalf || len(segs[0].Rounds) != 12 {
		t.Errorf("first_half: got %s with %d rounds", segs[0].Name, len(segs[0].Rounds))
	}
	if segs[1].Name != model.SegmentSecondHalf || len(segs[1].Rounds) != 12 {
		t.Errorf("second_half: got %s with %d rounds", segs[1].Name, len(segs[1].Rounds))
	}
	if segs[1].Label != "Rounds 13-24 (Second Half)" {
		t.Errorf("unexpected label %q", segs[1].Label)
	}
	if segs[1].Rounds[0].Num != 13 {
		t.Errorf("second half should start at round 13, got %d", segs[1].Rounds[0].Num)
	}
}

// TestPartitionRounds_Overtime: N=30 → three segments, overtime covers 25-30.
func TestPartitionRounds_Overtime(t *testing.T) {
	segs := PartitionRounds(makeRoundList(30))
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	ot := segs[2]
	if ot.Name != model.SegmentOvertime {
		t.Errorf("expected overtime, got %s", ot.Name)
	}
	if len(ot.Rounds) != 6 || ot.Rounds[0].Num != 25 || ot.Rounds[5].Num != 30 {
		t.Errorf("overtime should cover rounds 25-30, got %d rounds starting at %d",
			len(ot.Rounds), ot.Rounds[0].Num)
	}
	if ot.Label != "Rounds 25+ (Overtime)" {
		t.Errorf("unexpected label %q", ot.Label)
	}
}

// TestPartitionRounds_TotalAndDisjoint: every round belongs to exactly one
// segment and segments appear in round order.
func TestPartitionRounds_TotalAndDisjoint(t *testing.T) {
	for _, n := range []int{1, 5, 12, 13, 24, 25, 27, 40} {
		segs := PartitionRounds(makeRoundList(n))
		seen := make(map[int]int)
		prev := 0
		for _, seg := range segs {
			for _, r := range seg.Rounds {
				seen[r.Num]++
				if r.Num <= prev {
					t.Errorf("N=%d: round %d out of order", n, r.Num)
				}
				prev = r.Num
			}
		}
		if len(seen) != n {
			t.Errorf("N=%d: expected %d distinct rounds across segments, got %d", n, n, len(seen))
		}
		for num, count := range seen {
			if count != 1 {
				t.Errorf("N=%d: round %d appears in %d segments", n, num, count)
			}
		}
	}
}

// TestPartitionRounds_ThirteenRounds: the second half is emitted as soon as a
// 13th round exists.
func TestPartitionRounds_ThirteenRounds(t *testing.T) {
	segs := PartitionRounds(makeRoundList(13))
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if len(segs[1].Rounds) != 1 || segs[1].Rounds[0].Num != 13 {
		t.Errorf("second half should hold only round 13")
	}
	if segs[1].Label != "Rounds 13-13 (Second Half)" {
		t.Errorf("unexpected label %q", segs[1].Label)
	}
}
