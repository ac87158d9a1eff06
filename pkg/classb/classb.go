package classb

import (
	"math"

	"github.com/ampstage/pushpull/pkg/types"
)

// Advisory is the qualitative verdict attached to an analysis, derived from
// the voltage gain alone.
type Advisory string

const (
	// AdvisoryLowGain flags gain below the threshold. On this stage that
	// usually means strong crossover distortion or clipping.
	AdvisoryLowGain Advisory = "low gain: likely strong crossover distortion or clipping"

	// AdvisoryReasonable means the gain figure is plausible; the waveform
	// still has to be inspected for residual distortion.
	AdvisoryReasonable Advisory = "gain looks reasonable, inspect waveform for residual distortion"
)

// Analyze evaluates one measured operating point against the circuit
// constants. The bias current is inferred from the measured DC drop across
// R2.
func Analyze(c Circuit, m Measurement) Analysis {
	return analyze(c, m, m.VR2/c.R2, DefaultGainThreshold)
}

// Theoretical evaluates the idealized full-drive operating point: output
// swinging the whole supply rail and the divider carrying only its static
// current. It is the same formula set as Analyze with the inputs fixed by
// the circuit.
func Theoretical(c Circuit) Analysis {
	m := Measurement{
		UinPP:  TheoreticalUinPP,
		UoutPP: c.VCC, // maximum undistorted swing
		VR2:    float64(c.DividerVoltage()),
	}
	return analyze(c, m, float64(c.DividerCurrent()), DefaultGainThreshold)
}

// analyze is the shared formula chain. ibias is injected because the
// theoretical case takes it from the divider while the measured case takes
// it from the VR2 drop.
func analyze(c Circuit, m Measurement, ibias, threshold float64) Analysis {
	vpeak := m.UoutPP / 2
	vrms := vpeak / math.Sqrt2

	ipeak := vpeak / c.RL
	iav := ipeak / math.Pi // average of a half-wave sinusoid

	idc := iav + ibias

	pout := vrms * vrms / c.RL
	pdc := c.VCC * idc

	// Degenerate operating points resolve to zero figures, never to an error.
	var pdEach, eta float64
	if pdc > 0 {
		pdEach = (pdc - pout) / 2
		eta = pout / pdc
	}

	var av float64
	if m.UinPP > 0 {
		av = m.UoutPP / m.UinPP
	}

	return Analysis{
		Input:    m,
		Vpeak:    types.Volts(vpeak),
		Vrms:     types.Volts(vrms),
		Ipeak:    types.Amps(ipeak),
		Iav:      types.Amps(iav),
		Ibias:    types.Amps(ibias),
		Idc:      types.Amps(idc),
		Pout:     types.Watts(pout),
		Pdc:      types.Watts(pdc),
		PdEach:   types.Watts(pdEach),
		Eta:      eta,
		Av:       av,
		Advisory: adviseGain(av, threshold),
	}
}

// adviseGain maps a gain figure to an advisory. The threshold itself counts
// as reasonable.
func adviseGain(av, threshold float64) Advisory {
	if av < threshold {
		return AdvisoryLowGain
	}
	return AdvisoryReasonable
}

// Session accumulates measured analyses over one bench run, so a series of
// bias or drive adjustments can be compared at the end.
type Session struct {
	circuit Circuit
	opts    *Options

	count   int
	sumAv   float64
	best    Analysis // highest efficiency so far
	hottest Analysis // highest per-device dissipation so far
}

// NewSession creates a session for the given circuit. Fields > 0 in opts
// override the defaults; a nil opts keeps them all.
func NewSession(c Circuit, opts *Options) *Session {
	merged := _defaultOptions()
	if opts != nil && opts.GainThreshold > 0 {
		merged.GainThreshold = opts.GainThreshold
	}

	return &Session{circuit: c, opts: merged}
}

// Apply analyzes one measurement and folds it into the running summary.
func (s *Session) Apply(m Measurement) Analysis {
	a := analyze(s.circuit, m, m.VR2/s.circuit.R2, s.opts.GainThreshold)

	s.count++
	s.sumAv += a.Av
	if s.count == 1 || a.Eta > s.best.Eta {
		s.best = a
	}
	if s.count == 1 || a.PdEach > s.hottest.PdEach {
		s.hottest = a
	}

	return a
}

// Count reports how many measurements have been applied.
func (s *Session) Count() int { return s.count }

// AvgGain returns the mean voltage gain over all applied measurements, or 0
// when none have been applied yet.
func (s *Session) AvgGain() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sumAv / float64(s.count)
}

// BestEfficiency returns the analysis with the highest efficiency so far.
// The bool is false while the session is empty.
func (s *Session) BestEfficiency() (Analysis, bool) {
	if s.count == 0 {
		return Analysis{}, false
	}
	return s.best, true
}

// MaxDissipation returns the analysis that ran the output devices hottest so
// far. The bool is false while the session is empty.
func (s *Session) MaxDissipation() (Analysis, bool) {
	if s.count == 0 {
		return Analysis{}, false
	}
	return s.hottest, true
}
