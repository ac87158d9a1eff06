package classb

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func TestTheoretical_LabCircuit(t *testing.T) {
	c := DefaultCircuit()
	a := Theoretical(c)

	assert.InDelta(t, 5.0, float64(a.Vpeak), delta)
	assert.InDelta(t, 3.5355339, float64(a.Vrms), delta)
	assert.InDelta(t, 0.3333333, float64(a.Ipeak), delta)
	assert.InDelta(t, 0.1061033, float64(a.Iav), delta)
	assert.InDelta(t, 0.005, float64(a.Ibias), delta)
	assert.InDelta(t, 0.1111033, float64(a.Idc), delta)
	assert.InDelta(t, 0.8333333, float64(a.Pout), delta)
	assert.InDelta(t, 1.1110330, float64(a.Pdc), delta)
	assert.InDelta(t, 0.1388498, float64(a.PdEach), delta)
	assert.InDelta(t, 0.7500528, a.Eta, delta)
	assert.InDelta(t, 1.0, a.Av, delta)
	assert.Equal(t, AdvisoryReasonable, a.Advisory)

	// Energy balance: everything the supply delivers is either output or
	// heat in the two devices.
	assert.InDelta(t, float64(a.Pdc), float64(a.Pout)+2*float64(a.PdEach), delta)

	t.Logf("theoretical results:")
	t.Logf("  Vpeak=%s Vrms=%s", a.Vpeak.Humanized(), a.Vrms.Humanized())
	t.Logf("  Ipeak=%s Iav=%s Ibias=%s Idc=%s",
		a.Ipeak.Humanized(), a.Iav.Humanized(), a.Ibias.Humanized(), a.Idc.Humanized())
	t.Logf("  Pout=%s Pdc=%s PdEach=%s", a.Pout.Humanized(), a.Pdc.Humanized(), a.PdEach.Humanized())
	t.Logf("  eta=%.1f %% (ceiling %.1f %%) Av=%.2f", a.Eta*100, MaxEfficiency*100, a.Av)
}

func TestAnalyze_HandWorkedCases(t *testing.T) {
	c := DefaultCircuit()

	tests := []struct {
		name     string
		m        Measurement
		pout     float64
		pdc      float64
		pdEach   float64
		eta      float64
		av       float64
		advisory Advisory
	}{
		{
			name:     "moderate drive at gain boundary",
			m:        Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 2.0},
			pout:     0.1333333,
			pdc:      0.4444132,
			pdEach:   0.1555399,
			eta:      0.3000211,
			av:       0.8,
			advisory: AdvisoryReasonable,
		},
		{
			name:     "healthy drive above unity gain",
			m:        Measurement{UinPP: 5.0, UoutPP: 6.0, VR2: 3.5},
			pout:     0.3,
			pdc:      0.6716198,
			pdEach:   0.1858099,
			eta:      0.4466813,
			av:       1.2,
			advisory: AdvisoryReasonable,
		},
		{
			name:     "sagging output below threshold",
			m:        Measurement{UinPP: 5.0, UoutPP: 3.9, VR2: 2.0},
			pout:     0.1267500,
			pdc:      0.4338029,
			pdEach:   0.1535265,
			eta:      0.2921833,
			av:       0.78,
			advisory: AdvisoryLowGain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(c, tt.m)

			assert.InDelta(t, tt.m.UoutPP/2, float64(a.Vpeak), delta)
			assert.InDelta(t, tt.m.UoutPP/2/math.Sqrt2, float64(a.Vrms), delta)
			assert.InDelta(t, tt.m.VR2/c.R2, float64(a.Ibias), delta)
			assert.InDelta(t, tt.pout, float64(a.Pout), delta)
			assert.InDelta(t, tt.pdc, float64(a.Pdc), delta)
			assert.InDelta(t, tt.pdEach, float64(a.PdEach), delta)
			assert.InDelta(t, tt.eta, a.Eta, delta)
			assert.InDelta(t, tt.av, a.Av, delta)
			assert.Equal(t, tt.advisory, a.Advisory)

			t.Logf("%s: Pout=%s Pdc=%s eta=%.1f %% Av=%.2f",
				tt.name, a.Pout.Humanized(), a.Pdc.Humanized(), a.Eta*100, a.Av)
		})
	}
}

func TestAnalyze_DegenerateOperatingPoints(t *testing.T) {
	t.Run("no supply power", func(t *testing.T) {
		c := Circuit{VCC: 0, RL: 15, R1: 1e3, R2: 1e3}
		a := Analyze(c, Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 0})

		assert.Zero(t, a.Eta)
		assert.Zero(t, float64(a.PdEach))
		// The AC side is unaffected.
		assert.InDelta(t, 0.1333333, float64(a.Pout), delta)
	})

	t.Run("shorted bias leg", func(t *testing.T) {
		c := DefaultCircuit()
		c.R2 = 0
		a := Analyze(c, Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 2.0})

		// VR2/0 rides through as +Inf; only the guarded figures collapse.
		assert.True(t, math.IsInf(float64(a.Ibias), 1))
		assert.True(t, math.IsInf(float64(a.Pdc), 1))
		assert.True(t, math.IsInf(float64(a.PdEach), 1))
		assert.Zero(t, a.Eta)
		assert.InDelta(t, 0.8, a.Av, delta)
		assert.InDelta(t, 0.1333333, float64(a.Pout), delta)
	})

	t.Run("shorted bias leg, zero reading", func(t *testing.T) {
		c := DefaultCircuit()
		c.R2 = 0
		a := Analyze(c, Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 0})

		// 0/0 is NaN, which fails the Pdc > 0 guard.
		assert.True(t, math.IsNaN(float64(a.Ibias)))
		assert.True(t, math.IsNaN(float64(a.Pdc)))
		assert.Zero(t, a.Eta)
		assert.Zero(t, float64(a.PdEach))
	})

	t.Run("no drive", func(t *testing.T) {
		a := Analyze(DefaultCircuit(), Measurement{UinPP: 0, UoutPP: 4.0, VR2: 2.0})

		assert.Zero(t, a.Av)
		assert.Equal(t, AdvisoryLowGain, a.Advisory)
	})

	t.Run("negative drive", func(t *testing.T) {
		a := Analyze(DefaultCircuit(), Measurement{UinPP: -5.0, UoutPP: 4.0, VR2: 2.0})

		assert.Zero(t, a.Av)
	})
}

func TestAnalyze_EfficiencyNeverExceedsCeiling(t *testing.T) {
	c := DefaultCircuit()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		m := Measurement{
			UinPP:  rng.Float64() * 2 * c.VCC,
			UoutPP: rng.Float64() * c.VCC, // at most the full rail
			VR2:    rng.Float64() * c.VCC,
		}
		a := Analyze(c, m)

		require.InDelta(t, m.UoutPP/2, float64(a.Vpeak), delta)
		require.InDelta(t, float64(a.Vpeak)/math.Sqrt2, float64(a.Vrms), delta)
		require.GreaterOrEqual(t, a.Eta, 0.0, "measurement %+v", m)
		require.LessOrEqual(t, a.Eta, MaxEfficiency+delta, "measurement %+v", m)
		require.GreaterOrEqual(t, float64(a.Pdc), float64(a.Pout), "measurement %+v", m)
		require.GreaterOrEqual(t, float64(a.PdEach), 0.0, "measurement %+v", m)
	}
}

func TestTheoretical_IsSpecializedAnalyze(t *testing.T) {
	c := DefaultCircuit()

	want := Theoretical(c)
	got := Analyze(c, Measurement{
		UinPP:  TheoreticalUinPP,
		UoutPP: c.VCC,
		VR2:    float64(c.DividerVoltage()),
	})

	assert.Equal(t, want, got)
}

func TestSession_Summary(t *testing.T) {
	s := NewSession(DefaultCircuit(), nil)

	require.Zero(t, s.Count())
	require.Zero(t, s.AvgGain())
	_, ok := s.BestEfficiency()
	require.False(t, ok)
	_, ok = s.MaxDissipation()
	require.False(t, ok)

	s.Apply(Measurement{UinPP: 5.0, UoutPP: 4.0, VR2: 2.0}) // eta 30.0 %
	s.Apply(Measurement{UinPP: 5.0, UoutPP: 6.0, VR2: 3.5}) // eta 44.7 %
	s.Apply(Measurement{UinPP: 5.0, UoutPP: 5.0, VR2: 5.0}) // overbiased, runs hot

	assert.Equal(t, 3, s.Count())
	assert.InDelta(t, 1.0, s.AvgGain(), delta) // (0.8 + 1.2 + 1.0) / 3

	best, ok := s.BestEfficiency()
	require.True(t, ok)
	assert.InDelta(t, 6.0, best.Input.UoutPP, delta)
	assert.InDelta(t, 0.4466813, best.Eta, delta)

	hottest, ok := s.MaxDissipation()
	require.True(t, ok)
	assert.InDelta(t, 5.0, hottest.Input.VR2, delta)
	assert.InDelta(t, 0.1860916, float64(hottest.PdEach), delta)
}

func TestNewSession_Options(t *testing.T) {
	c := DefaultCircuit()
	m := Measurement{UinPP: 5.0, UoutPP: 5.0, VR2: 2.5} // Av = 1.0

	t.Run("raised threshold flags unity gain", func(t *testing.T) {
		s := NewSession(c, &Options{GainThreshold: 1.05})
		a := s.Apply(m)

		assert.Equal(t, AdvisoryLowGain, a.Advisory)
	})

	t.Run("non-positive threshold falls back to default", func(t *testing.T) {
		s := NewSession(c, &Options{GainThreshold: -1})
		a := s.Apply(m)

		assert.Equal(t, AdvisoryReasonable, a.Advisory)
	})
}

func ExampleTheoretical() {
	a := Theoretical(DefaultCircuit())

	fmt.Printf("Vpeak = %s\n", a.Vpeak.Humanized())
	fmt.Printf("Pout  = %.1f mW\n", a.Pout.Milli())
	fmt.Printf("eta   = %.1f %%\n", a.Eta*100)
	// Output:
	// Vpeak = 5.00 V
	// Pout  = 833.3 mW
	// eta   = 75.0 %
}

func ExampleAnalyze() {
	a := Analyze(DefaultCircuit(), Measurement{
		UinPP:  5.0,
		UoutPP: 6.0,
		VR2:    3.5,
	})

	fmt.Printf("Av  = %.2f\n", a.Av)
	fmt.Printf("eta = %.1f %%\n", a.Eta*100)
	fmt.Println(a.Advisory)
	// Output:
	// Av  = 1.20
	// eta = 44.7 %
	// gain looks reasonable, inspect waveform for residual distortion
}
