// Package render turns aggregated position samples into radar-style PNG
// images. Failures here are isolated per image: the caller logs and moves on.
package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"github.com/Jearnest94/NadeStacked/internal/analysis"
	"github.com/Jearnest94/NadeStacked/internal/model"
)

// Side palettes: blue for CT, red for T.
var (
	ctFill = [3]float64{0x44 / 255.0, 0x72 / 255.0, 0xC4 / 255.0}
	tFill  = [3]float64{0xC5 / 255.0, 0x50 / 255.0, 0x4B / 255.0}
)

func sideFill(side string) [3]float64 {
	if strings.EqualFold(side, "ct") {
		return ctFill
	}
	return tFill
}

// Progressive transparency for overlay layers: the latest timestamp is the
// most transparent.
var overlayAlpha = map[string]float64{
	"1:48": 0.2,
	"1:47": 0.4,
	"1:46": 0.8,
}

const defaultOverlayAlpha = 0.7

// Heatmap renders the density image for one (segment, marker) combination of
// one player.
func Heatmap(path, mapName, player string, data analysis.HeatmapData) error {
	dc := gg.NewContext(imageSize, imageSize)
	dc.SetRGB(0.06, 0.06, 0.08)
	dc.Clear()

	proj := NewProjector(mapName, data.Points)
	fill := sideFill(data.Side)

	// Stacked translucent discs approximate density: frequently-held spots
	// saturate toward the side color.
	for _, pt := range data.Points {
		px, py := proj.Pixel(pt.X, pt.Y)
		if !proj.InBounds(px, py) {
			continue
		}
		dc.SetRGBA(fill[0], fill[1], fill[2], 0.25)
		dc.DrawCircle(px, py, 16)
		dc.Fill()
	}

	// Round-number annotations at each distinct XY.
	for xy, labels := range data.RoundLabels {
		if suppressAnnotation(mapName, xy, data.Points) {
			continue
		}
		px, py := proj.Pixel(xy[0], xy[1])
		if !proj.InBounds(px, py) {
			continue
		}
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(annotationText(labels), px, py, 0.5, 0.5)
	}

	info := fmt.Sprintf("Player: %s (%s-Side)\nTimestamp: %s (%.0fs before round end)\n%s (%d positions)",
		player, strings.ToUpper(data.Side), data.Marker.Display, data.Marker.Seconds,
		data.Segment.Label, len(data.Points))
	drawInfoBox(dc, info)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}

// Overlay renders the per-segment combined scatter image: all markers layered
// with progressive transparency and re-based round annotations.
func Overlay(path, mapName, player, side, rangeLabel string, points []analysis.OverlayPoint, markers []model.TimeMarker) error {
	dc := gg.NewContext(imageSize, imageSize)
	dc.SetRGB(0.06, 0.06, 0.08)
	dc.Clear()

	var world []model.Vec3
	for _, op := range points {
		world = append(world, op.Point)
	}
	proj := NewProjector(mapName, world)
	fill := sideFill(side)

	// One scatter layer per marker, in configured marker order.
	for _, marker := range markers {
		alpha, ok := overlayAlpha[marker.Display]
		if !ok {
			alpha = defaultOverlayAlpha
		}
		for _, op := range points {
			if op.TimeLabel != marker.Label {
				continue
			}
			px, py := proj.Pixel(op.Point.X, op.Point.Y)
			if !proj.InBounds(px, py) {
				continue
			}
			dc.SetRGBA(fill[0], fill[1], fill[2], alpha)
			dc.DrawCircle(px, py, 7)
			dc.Fill()
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(op.RoundLabel, px, py, 0.5, 0.5)
		}
	}

	title := fmt.Sprintf("Combined Positions: %s (%s-Side)\n%s", player, strings.ToUpper(side), rangeLabel)
	drawInfoBox(dc, title)
	drawLegend(dc, markers)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}

// annotationText joins round labels, truncating past three: "1,+4".
func annotationText(labels []string) string {
	if len(labels) <= 3 {
		return strings.Join(labels, ",")
	}
	return fmt.Sprintf("%s,+%d", labels[0], len(labels)-1)
}

// suppressAnnotation hides labels for positions on Nuke's lower level, which
// the radar cannot represent.
func suppressAnnotation(mapName string, xy [2]float64, points []model.Vec3) bool {
	if mapName != "de_nuke" {
		return false
	}
	for _, pt := range points {
		if pt.X == xy[0] && pt.Y == xy[1] {
			return pt.Z < -300
		}
	}
	return false
}

func drawInfoBox(dc *gg.Context, text string) {
	lines := strings.Split(text, "\n")
	boxH := float64(14*len(lines) + 10)
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawRectangle(10, 10, 420, boxH)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	for i, line := range lines {
		dc.DrawString(line, 16, 24+float64(14*i))
	}
}

func drawLegend(dc *gg.Context, markers []model.TimeMarker) {
	y := float64(imageSize - 20 - 16*len(markers))
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawString("Timestamps", 16, y)
	for i, m := range markers {
		alpha, ok := overlayAlpha[m.Display]
		if !ok {
			alpha = defaultOverlayAlpha
		}
		dc.SetRGBA(1, 1, 1, alpha)
		dc.DrawString(m.Display, 16, y+16*float64(i+1))
	}
}
