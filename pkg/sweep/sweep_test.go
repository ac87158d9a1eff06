package sweep

import (
	"bytes"
	"math"
	"testing"

	"github.com/ampstage/pushpull/pkg/classb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func TestRun_Defaults(t *testing.T) {
	c := classb.DefaultCircuit()
	points := Run(c, Config{})

	require.Len(t, points, defaultPoints)
	assert.Greater(t, points[0].UoutPP, 0.0)
	assert.InDelta(t, c.VCC, points[len(points)-1].UoutPP, delta)

	// Output power grows monotonically with drive.
	for i := 1; i < len(points); i++ {
		assert.Greater(t, float64(points[i].Pout), float64(points[i-1].Pout))
	}
}

func TestRun_FullSwingMatchesTheoretical(t *testing.T) {
	c := classb.DefaultCircuit()
	points := Run(c, Config{Points: 10})
	last := points[len(points)-1]

	want := classb.Theoretical(c)
	assert.InDelta(t, float64(want.Pout), float64(last.Pout), delta)
	assert.InDelta(t, float64(want.Pdc), float64(last.Pdc), delta)
	assert.InDelta(t, want.Eta, last.Eta, delta)
}

func TestRun_DissipationPeak(t *testing.T) {
	// With the bias current made negligible the per-device dissipation peaks
	// at Vpeak = VCC/π, i.e. Uout = 2·VCC/π.
	c := classb.Circuit{VCC: 10, RL: 15, R1: 1e9, R2: 1e9}
	points := Run(c, Config{Points: 1000})

	peak := points[0]
	for _, pt := range points {
		if pt.PdEach > peak.PdEach {
			peak = pt
		}
	}

	assert.InDelta(t, 2*c.VCC/math.Pi, peak.UoutPP, 0.02)

	t.Logf("dissipation peak: Uout=%.3f Vp-p PdEach=%s", peak.UoutPP, peak.PdEach.Humanized())
}

func TestFilter(t *testing.T) {
	points := Run(classb.DefaultCircuit(), Config{})

	t.Run("threshold on eta", func(t *testing.T) {
		kept, err := Filter(points, "eta > 0.5")
		require.NoError(t, err)
		require.NotEmpty(t, kept)
		assert.Less(t, len(kept), len(points))

		for _, pt := range kept {
			assert.Greater(t, pt.Eta, 0.5)
		}
	})

	t.Run("combined condition", func(t *testing.T) {
		kept, err := Filter(points, "pd_each > 0.15 && uout_pp < 8.0")
		require.NoError(t, err)

		for _, pt := range kept {
			assert.Greater(t, float64(pt.PdEach), 0.15)
			assert.Less(t, pt.UoutPP, 8.0)
		}
	})

	t.Run("keep everything", func(t *testing.T) {
		kept, err := Filter(points, "true")
		require.NoError(t, err)
		assert.Len(t, kept, len(points))
	})

	t.Run("malformed expression", func(t *testing.T) {
		_, err := Filter(points, "eta >")
		require.Error(t, err)
	})

	t.Run("non-boolean expression", func(t *testing.T) {
		_, err := Filter(points, "eta + 1")
		require.Error(t, err)
	})
}

func TestWritePlot(t *testing.T) {
	points := Run(classb.DefaultCircuit(), Config{Points: 20})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WritePlot(&buf, points, "png"))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WritePlot(&buf, points, "svg"))
		assert.Contains(t, buf.String(), "<svg")
	})

	t.Run("no points", func(t *testing.T) {
		var buf bytes.Buffer
		err := WritePlot(&buf, nil, "png")
		require.ErrorIs(t, err, ErrNoPoints)
	})
}
