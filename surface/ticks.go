package surface

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// maxMeshTicks bounds the number of labelled ticks IntegerTicks places.
const maxMeshTicks = 6

// IntegerTicks is a plot.Ticker for mesh index axes. Ticks fall on whole
// numbers with a step of 1, 2 or 5 times a power of ten and are labelled
// without decimals.
type IntegerTicks struct{}

var _ plot.Ticker = IntegerTicks{}

// Ticks returns major ticks between min and max inclusive.
func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	if max < min {
		min, max = max, min
	}
	step := integerStep(max - min)
	var ticks []plot.Tick
	for i := math.Ceil(min / step); i*step <= max; i++ {
		v := i * step
		if v == 0 {
			v = 0 // no "-0"
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

func integerStep(span float64) float64 {
	for mag := 1.0; ; mag *= 10 {
		for _, m := range [...]float64{1, 2, 5} {
			if span/(m*mag) <= maxMeshTicks {
				return m * mag
			}
		}
	}
}
