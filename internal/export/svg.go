package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/Clayten/blackholes/internal/track"
)

type Point struct{ X, Y float64 }

// SVGOptions controls TrackToSVG. Zero values pick 640x360 and an orange
// stroke.
type SVGOptions struct {
	Width  int
	Height int
	Stroke string
	Log    bool
}

// TrackToSVG plots one column of a tracked run against elapsed time.
func TrackToSVG(samples []track.Sample, column string, opts SVGOptions) (string, error) {
	ys, err := (&track.Result{Samples: samples}).Column(column)
	if err != nil {
		return "", err
	}
	if opts.Width == 0 {
		opts.Width = 640
	}
	if opts.Height == 0 {
		opts.Height = 360
	}
	if opts.Stroke == "" {
		opts.Stroke = "#ff8c00"
	}

	points := make([]Point, 0, len(samples))
	for i, s := range samples {
		y := ys[i]
		if opts.Log {
			if y <= 0 {
				continue
			}
			y = math.Log10(y)
		}
		points = append(points, Point{X: s.ElapsedS, Y: y})
	}
	if len(points) < 2 {
		return "", fmt.Errorf("need at least 2 plottable samples, got %d", len(points))
	}
	return TrajectoryToSVG(points, opts.Width, opts.Height, opts.Stroke), nil
}

// TrajectoryToSVG creates an SVG path from a series of points.
func TrajectoryToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
