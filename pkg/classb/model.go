package classb

import (
	"math"

	"github.com/ampstage/pushpull/pkg/types"
)

const (
	// DefaultGainThreshold separates the "low gain, suspect crossover or
	// clipping" advisory from "looks reasonable". Indicative bench heuristic,
	// not derived from circuit theory.
	DefaultGainThreshold = 0.8

	// TheoreticalUinPP is the generator amplitude of the full-drive exercise
	// in Vp-p.
	TheoreticalUinPP = 10.0

	// MaxEfficiency is the theoretical class-B ceiling, π/4 ≈ 78.5 %.
	MaxEfficiency = math.Pi / 4
)

// Circuit holds the push-pull stage constants, fixed for a whole bench run.
// Units:
//   - VCC: Volts (single supply rail)
//   - RL: Ohms (load on the output node)
//   - R1/R2: Ohms (bias divider from VCC to ground; R2 is the lower leg)
type Circuit struct {
	VCC float64 `json:"vcc" yaml:"supply"`
	RL  float64 `json:"rl" yaml:"load"`
	R1  float64 `json:"r1" yaml:"r1"`
	R2  float64 `json:"r2" yaml:"r2"`
}

// DefaultCircuit returns the lab constants the exercise is built around.
func DefaultCircuit() Circuit {
	return Circuit{
		VCC: 10.0, // V
		RL:  15.0, // ohm
		R1:  1e3,  // ohm
		R2:  1e3,  // ohm
	}
}

// DividerCurrent returns the static current through the unloaded bias
// divider, VCC/(R1+R2). Independent of signal drive.
func (c Circuit) DividerCurrent() types.Amps {
	return types.Amps(c.VCC / (c.R1 + c.R2))
}

// DividerVoltage returns the nominal DC voltage across R2 when the divider
// carries only its static current.
func (c Circuit) DividerVoltage() types.Volts {
	return types.Volts(c.VCC * c.R2 / (c.R1 + c.R2))
}

// Measurement is one operating point as read off the bench: generator
// amplitude, output amplitude on RL (both Vp-p), and the DC drop across R2
// used to infer the bias current.
type Measurement struct {
	UinPP  float64 `json:"uin_pp" yaml:"uin_pp"`
	UoutPP float64 `json:"uout_pp" yaml:"uout_pp"`
	VR2    float64 `json:"vr2_dc" yaml:"vr2_dc"`
}

// Analysis is the full set of derived figures for one operating point.
// It is a pure function of (Circuit, Measurement); nothing is cached or
// shared between calls.
type Analysis struct {
	Input Measurement `json:"input" yaml:"input"`

	Vpeak types.Volts `json:"vpeak_v" yaml:"vpeak_v"`
	Vrms  types.Volts `json:"vrms_v" yaml:"vrms_v"`

	Ipeak types.Amps `json:"ipeak_a" yaml:"ipeak_a"`
	Iav   types.Amps `json:"iav_a" yaml:"iav_a"`     // per conducting device
	Ibias types.Amps `json:"ibias_a" yaml:"ibias_a"` // static divider current
	Idc   types.Amps `json:"idc_a" yaml:"idc_a"`     // total from supply

	Pout   types.Watts `json:"pout_w" yaml:"pout_w"`
	Pdc    types.Watts `json:"pdc_w" yaml:"pdc_w"`
	PdEach types.Watts `json:"pd_each_w" yaml:"pd_each_w"` // per device

	Eta float64 `json:"eta" yaml:"eta"` // Pout/Pdc, 0 when degenerate
	Av  float64 `json:"av" yaml:"av"`   // UoutPP/UinPP, 0 when degenerate

	Advisory Advisory `json:"advisory" yaml:"advisory"`
}

// Options tunes a Session.
// Fields > 0 override defaults; zero or negative fields are treated as unset.
type Options struct {
	GainThreshold float64
}

// _defaultOptions returns the Options a nil or unset argument falls back to.
func _defaultOptions() *Options {
	return &Options{GainThreshold: DefaultGainThreshold}
}
