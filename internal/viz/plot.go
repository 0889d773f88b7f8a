package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

type PlotOptions struct {
	Caption string
	Height  int
	Width   int
	Log     bool
}

// Plot draws data as an ASCII line chart. With Log set the values are
// plotted as log10; non-positive values are clamped to the smallest positive
// value in the series.
func Plot(data []float64, opts PlotOptions) string {
	if len(data) == 0 {
		return ""
	}
	if opts.Height == 0 {
		opts.Height = 10
	}
	if opts.Width == 0 {
		opts.Width = 80
	}

	series := data
	if opts.Log {
		series = log10Series(data)
	}

	return asciigraph.Plot(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(opts.Caption),
	)
}

func log10Series(data []float64) []float64 {
	floor := math.Inf(1)
	for _, v := range data {
		if v > 0 && v < floor {
			floor = v
		}
	}
	out := make([]float64, len(data))
	if math.IsInf(floor, 1) {
		return out
	}
	for i, v := range data {
		if v < floor {
			v = floor
		}
		out[i] = math.Log10(v)
	}
	return out
}
