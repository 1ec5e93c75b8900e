package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() DoseParams {
	return DoseParams{
		DoseMg:          250,
		HalfLifeDays:    4.5,
		AbsorptionRate:  0.7,
		Bioavailability: 0.95,
		BodyWeightKg:    80,
	}
}

func TestConcentrationCausality(t *testing.T) {
	p := baseParams()
	assert.Zero(t, Concentration(0, p))
	assert.Zero(t, Concentration(-1, p))
	assert.Greater(t, Concentration(0.01, p), 0.0)
}

func TestConcentrationDegenerateHalfLife(t *testing.T) {
	p := baseParams()
	p.HalfLifeDays = 0
	assert.Zero(t, Concentration(5, p))
	p.HalfLifeDays = -2
	assert.Zero(t, Concentration(5, p))
}

func TestConcentrationPeaksAtAnalyticTime(t *testing.T) {
	p := baseParams()
	ke := math.Ln2 / p.HalfLifeDays
	tPeak := math.Log(p.AbsorptionRate/ke) / (p.AbsorptionRate - ke)

	assert.InDelta(t, tPeak, PeakTime(p.HalfLifeDays, p.AbsorptionRate), 1e-12)

	// Rising before the peak, falling after.
	cPeak := Concentration(tPeak, p)
	assert.Greater(t, cPeak, Concentration(tPeak*0.5, p))
	assert.Greater(t, cPeak, Concentration(tPeak*1.5, p))

	// Numeric maximum of a fine scan lands at the analytic peak time.
	bestT, bestC := 0.0, 0.0
	for x := 0.01; x < 30; x += 0.01 {
		if c := Concentration(x, p); c > bestC {
			bestT, bestC = x, c
		}
	}
	assert.InDelta(t, tPeak, bestT, 0.02)

	// Strictly decreasing past the peak, vanishing at large t.
	prev := cPeak
	for x := tPeak + 0.5; x < 60; x += 0.5 {
		c := Concentration(x, p)
		require.Less(t, c, prev, "not strictly decreasing at t=%v", x)
		prev = c
	}
	assert.Less(t, Concentration(300, p), cPeak*1e-6)
}

func TestConcentrationBranchBoundaryWellBehaved(t *testing.T) {
	p := baseParams()
	ke := math.Ln2 / p.HalfLifeDays

	// ka barely above ke keeps the Bateman branch: the 1/(ka−ke) factor must
	// not blow up, and shrinking ε converges to a single limit curve.
	coarse := p
	coarse.AbsorptionRate = ke * (1 + 1e-6)
	fine := p
	fine.AbsorptionRate = ke * (1 + 1e-9)

	for _, x := range []float64{0.5, 2, 5, 10, 20} {
		cc := Concentration(x, coarse)
		cf := Concentration(x, fine)
		require.False(t, math.IsNaN(cc) || math.IsInf(cc, 0), "not finite at t=%v", x)
		require.GreaterOrEqual(t, cc, 0.0)
		assert.InEpsilon(t, cc, cf, 1e-3, "no convergence at t=%v", x)
	}

	// At exactly ka=ke the bolus branch takes over without a singularity.
	exact := p
	exact.AbsorptionRate = ke
	c := Concentration(5, exact)
	assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
	assert.Greater(t, c, 0.0)
}

func TestConcentrationBolusDecaysByHalfLife(t *testing.T) {
	p := baseParams()
	p.AbsorptionRate = 0 // bolus

	c1 := Concentration(p.HalfLifeDays, p)
	c2 := Concentration(2*p.HalfLifeDays, p)
	assert.InEpsilon(t, c1/2, c2, 1e-9)
}

func TestConcentrationCalibrationAppliedLast(t *testing.T) {
	p := baseParams()
	uncal := Concentration(3, p)

	p.CalibrationFactor = 2.5
	assert.InEpsilon(t, uncal*2.5, Concentration(3, p), 1e-12)

	// Non-positive factor means uncalibrated.
	p.CalibrationFactor = -1
	assert.InEpsilon(t, uncal, Concentration(3, p), 1e-12)
}

func TestConcentrationScalesWithBodyWeight(t *testing.T) {
	p := baseParams()
	p.BodyWeightKg = 70
	at70 := Concentration(3, p)
	p.BodyWeightKg = 140
	at140 := Concentration(3, p)

	// Doubling the distribution volume halves the concentration.
	assert.InEpsilon(t, at70/2, at140, 1e-9)

	// Non-positive weight falls back to the 70 kg reference.
	p.BodyWeightKg = 0
	assert.InEpsilon(t, at70, Concentration(3, p), 1e-9)
}

func TestTwoCompartmentNonNegativeAndDistinct(t *testing.T) {
	one := baseParams()
	two := baseParams()
	two.TwoCompartment = true

	var differs bool
	for x := 0.1; x < 40; x += 0.1 {
		c := Concentration(x, two)
		require.GreaterOrEqual(t, c, 0.0, "negative concentration at t=%v", x)
		if math.Abs(c-Concentration(x, one)) > 1e-9 {
			differs = true
		}
	}
	assert.True(t, differs, "two-compartment curve never diverged from one-compartment")
}

func TestPeakTimeDegenerateInputs(t *testing.T) {
	assert.Zero(t, PeakTime(0, 0.7))
	assert.Zero(t, PeakTime(-1, 0.7))
	// Bolus-like compounds peak immediately.
	assert.Zero(t, PeakTime(4.5, 0.01))
}
