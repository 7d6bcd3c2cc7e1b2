package analysis

import "github.com/Jearnest94/NadeStacked/internal/model"

// DefaultMarkers returns the three reference sampling moments. The labels
// name the clock time remaining; the Seconds values are subtracted from the
// round-end tick when resolving the sample tick.
func DefaultMarkers() []model.TimeMarker {
	return []model.TimeMarker{
		{Label: "1m48s", Seconds: 7, Display: "1:48", Color: "red"},
		{Label: "1m47s", Seconds: 8, Display: "1:47", Color: "red"},
		{Label: "1m46s", Seconds: 9, Display: "1:46", Color: "red"},
	}
}
