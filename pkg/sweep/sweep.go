// Package sweep computes closed-form drive sweeps of a push-pull stage: the
// power figures across the whole output range, for spotting the efficiency
// and dissipation extremes before touching the bench.
package sweep

import (
	"errors"
	"fmt"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/ampstage/pushpull/pkg/types"
	"github.com/expr-lang/expr"
)

const defaultPoints = 50

// ErrNoPoints indicates an empty sweep, usually a filter that rejected every
// row.
var ErrNoPoints = errors.New("sweep: no points")

// Point is the power picture at one output drive level.
type Point struct {
	UoutPP float64     `json:"uout_pp" yaml:"uout_pp"`
	Vpeak  types.Volts `json:"vpeak_v" yaml:"vpeak_v"`
	Pout   types.Watts `json:"pout_w" yaml:"pout_w"`
	Pdc    types.Watts `json:"pdc_w" yaml:"pdc_w"`
	PdEach types.Watts `json:"pd_each_w" yaml:"pd_each_w"`
	Eta    float64     `json:"eta" yaml:"eta"`
}

// Config bounds a sweep. Zero or negative fields fall back to defaults:
// 50 points up to the full rail.
type Config struct {
	Points int
	MaxPP  float64
}

// Run samples the drive range (0, max] at evenly spaced output levels. The
// bias current is the nominal divider current throughout, so the sweep shows
// the stage as built, not as measured.
func Run(c classb.Circuit, cfg Config) []Point {
	n := cfg.Points
	if n <= 0 {
		n = defaultPoints
	}
	max := cfg.MaxPP
	if max <= 0 {
		max = c.VCC
	}

	vr2 := float64(c.DividerVoltage())

	points := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		uout := max * float64(i) / float64(n)
		a := classb.Analyze(c, classb.Measurement{UinPP: uout, UoutPP: uout, VR2: vr2})

		points = append(points, Point{
			UoutPP: uout,
			Vpeak:  a.Vpeak,
			Pout:   a.Pout,
			Pdc:    a.Pdc,
			PdEach: a.PdEach,
			Eta:    a.Eta,
		})
	}

	return points
}

// Filter keeps the points for which the expression evaluates true. The
// expression sees one row at a time under the names uout_pp, vpeak, pout,
// pdc, pd_each and eta, all in base units.
func Filter(points []Point, src string) ([]Point, error) {
	program, err := expr.Compile(src, expr.Env(envFor(Point{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	out := make([]Point, 0, len(points))
	for _, pt := range points {
		keep, err := expr.Run(program, envFor(pt))
		if err != nil {
			return nil, fmt.Errorf("evaluate filter: %w", err)
		}
		if keep.(bool) {
			out = append(out, pt)
		}
	}

	return out, nil
}

func envFor(pt Point) map[string]interface{} {
	return map[string]interface{}{
		"uout_pp": pt.UoutPP,
		"vpeak":   float64(pt.Vpeak),
		"pout":    float64(pt.Pout),
		"pdc":     float64(pt.Pdc),
		"pd_each": float64(pt.PdEach),
		"eta":     pt.Eta,
	}
}
