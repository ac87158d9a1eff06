// Package eseries picks standard resistor values from the IEC 60063 E24
// series and suggests bias divider pairs built from them.
package eseries

import (
	"math"
	"sort"

	"github.com/ampstage/pushpull/pkg/types"
)

// E24 holds the 24 mantissas of the 5 % resistor series, one decade.
var E24 = []float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6,
	1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
	3.3, 3.6, 3.9, 4.3, 4.7, 5.1,
	5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// Nearest returns the E24 value closest to x by relative error.
// Non-positive x yields 0.
func Nearest(x float64) float64 {
	if x <= 0 {
		return 0
	}

	exp := math.Floor(math.Log10(x))

	best, bestErr := 0.0, math.Inf(1)
	for d := exp - 1; d <= exp+1; d++ {
		scale := math.Pow(10, d)
		for _, m := range E24 {
			v := m * scale
			if e := math.Abs(v-x) / x; e < bestErr {
				best, bestErr = v, e
			}
		}
	}

	return best
}

// Values returns all E24 values within [min, max], ascending.
func Values(min, max float64) []float64 {
	if min <= 0 || max < min {
		return nil
	}

	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))

	var out []float64
	for d := lo; d <= hi; d++ {
		scale := math.Pow(10, d)
		for _, m := range E24 {
			if v := m * scale; v >= min && v <= max {
				out = append(out, v)
			}
		}
	}
	sort.Float64s(out)

	return out
}

// DividerOption is one candidate R1/R2 pair for the bias divider, with the
// figures it would actually produce.
type DividerOption struct {
	R1 float64 // ohm, upper leg
	R2 float64 // ohm, lower leg

	Ibias types.Amps  // static divider current at the given supply
	VR2   types.Volts // DC voltage across R2

	BiasErr float64 // relative deviation of Ibias from the target
	MidErr  float64 // relative deviation of VR2 from the VCC/2 midpoint
}

// score ranks an option; smaller is better. Current accuracy and midpoint
// symmetry weigh equally.
func (o DividerOption) score() float64 {
	return o.BiasErr + o.MidErr
}

// DividerOptions suggests up to n E24 pairs for a divider across vcc that
// draws approximately the target current while keeping VR2 near the
// midpoint. Candidates come from one decade around the ideal half value
// vcc/(2·target). Non-positive vcc or target yields nil.
func DividerOptions(vcc, target float64, n int) []DividerOption {
	if vcc <= 0 || target <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}

	half := vcc / (2 * target)
	candidates := Values(half/3, half*3)

	opts := make([]DividerOption, 0, len(candidates)*len(candidates))
	for _, r1 := range candidates {
		for _, r2 := range candidates {
			ibias := vcc / (r1 + r2)
			vr2 := vcc * r2 / (r1 + r2)

			opts = append(opts, DividerOption{
				R1:      r1,
				R2:      r2,
				Ibias:   types.Amps(ibias),
				VR2:     types.Volts(vr2),
				BiasErr: math.Abs(ibias-target) / target,
				MidErr:  math.Abs(vr2-vcc/2) / (vcc / 2),
			})
		}
	}

	sort.Slice(opts, func(i, j int) bool {
		si, sj := opts[i].score(), opts[j].score()
		if si != sj {
			return si < sj
		}
		if opts[i].R1 != opts[j].R1 {
			return opts[i].R1 < opts[j].R1
		}
		return opts[i].R2 < opts[j].R2
	})

	if len(opts) > n {
		opts = opts[:n]
	}

	return opts
}
