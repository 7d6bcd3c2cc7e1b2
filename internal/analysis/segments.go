package analysis

import (
	"fmt"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// Round-count thresholds for MR12 regulation play.
const (
	firstHalfEnd  = 12
	regulationEnd = 24
)

// PartitionRounds splits an ordered round list into first half, second half,
// and overtime segments by fixed size thresholds. Every round lands in
// exactly one segment; segments that would be empty are not emitted.
func PartitionRounds(rounds []model.RoundRecord) []model.RoundSegment {
	n := len(rounds)
	if n == 0 {
		return nil
	}

	var segments []model.RoundSegment

	end := min(firstHalfEnd, n)
	segments = append(segments, model.RoundSegment{
		Name:   model.SegmentFirstHalf,
		Label:  fmt.Sprintf("Rounds 1-%d (First Half)", end),
		Rounds: rounds[0:end],
	})

	if n >= firstHalfEnd+1 {
		end = min(regulationEnd, n)
		if end > firstHalfEnd {
			segments = append(segments, model.RoundSegment{
				Name:   model.SegmentSecondHalf,
				Label:  fmt.Sprintf("Rounds %d-%d (Second Half)", firstHalfEnd+1, end),
				Rounds: rounds[firstHalfEnd:end],
			})
		}
	}

	if n >= regulationEnd+1 {
		segments = append(segments, model.RoundSegment{
			Name:   model.SegmentOvertime,
			Label:  fmt.Sprintf("Rounds %d+ (Overtime)", regulationEnd+1),
			Rounds: rounds[regulationEnd:],
		})
	}

	return segments
}
