package render

import "github.com/Jearnest94/NadeStacked/internal/model"

// imageSize is the edge length of the rendered radar square in pixels.
const imageSize = 1024

// mapCalibration maps world coordinates onto the radar square: PosX/PosY is
// the world coordinate of the radar's top-left corner, Scale is world units
// per radar pixel. Values come from the game's overview files.
type mapCalibration struct {
	PosX, PosY float64
	Scale      float64
}

var calibrations = map[string]mapCalibration{
	"de_dust2":    {PosX: -2476, PosY: 3239, Scale: 4.4},
	"de_mirage":   {PosX: -3230, PosY: 1713, Scale: 5.0},
	"de_inferno":  {PosX: -2087, PosY: 3870, Scale: 4.9},
	"de_nuke":     {PosX: -3453, PosY: 2887, Scale: 7.0},
	"de_overpass": {PosX: -4831, PosY: 1781, Scale: 5.2},
	"de_ancient":  {PosX: -2953, PosY: 2164, Scale: 5.0},
	"de_anubis":   {PosX: -2796, PosY: 3328, Scale: 5.22},
	"de_vertigo":  {PosX: -3168, PosY: 1762, Scale: 4.0},
	"de_train":    {PosX: -2477, PosY: 2392, Scale: 4.7},
}

// Projector converts world coordinates to image pixels for one map. Maps
// without a known calibration fall back to autoscaling over the point bounds.
type Projector struct {
	cal        mapCalibration
	calibrated bool

	// autoscale fallback
	minX, minY float64
	scale      float64
}

// NewProjector builds a projector for the map, deriving an autoscale
// transform from the points when the map is not calibrated.
func NewProjector(mapName string, points []model.Vec3) *Projector {
	if cal, ok := calibrations[mapName]; ok {
		return &Projector{cal: cal, calibrated: true}
	}

	p := &Projector{scale: 1}
	if len(points) == 0 {
		return p
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	// 10% margin so edge points stay inside the frame.
	spanX, spanY := maxX-minX, maxY-minY
	span := max(max(spanX, spanY), 1)
	margin := span * 0.1
	p.minX = minX - margin
	p.minY = minY - margin
	p.scale = (span + 2*margin) / imageSize
	return p
}

// Pixel converts a world XY coordinate to image pixels. The Y axis flips:
// world north is image up.
func (p *Projector) Pixel(x, y float64) (px, py float64) {
	if p.calibrated {
		return (x - p.cal.PosX) / p.cal.Scale, (p.cal.PosY - y) / p.cal.Scale
	}
	return (x - p.minX) / p.scale, float64(imageSize) - (y-p.minY)/p.scale
}

// InBounds reports whether a pixel coordinate lands on the radar square.
func (p *Projector) InBounds(px, py float64) bool {
	return px >= 0 && px <= imageSize && py >= 0 && py <= imageSize
}
