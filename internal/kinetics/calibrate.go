package kinetics

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/utils"
)

// minCalibrationSamples is the fewest lab samples a fit needs. Sparse records
// are a normal outcome, not an error.
const minCalibrationSamples = 2

type CalibrationStatus string

const (
	CalibrationOK               CalibrationStatus = "ok"
	CalibrationInsufficientData CalibrationStatus = "insufficient data"
)

// CalibrationResult holds the fitted constants and fit quality. When Status is
// CalibrationInsufficientData the remaining fields are zero.
type CalibrationResult struct {
	Status            CalibrationStatus
	Ke                float64 // day⁻¹
	Ka                float64 // day⁻¹
	HalfLifeDays      float64
	HalfLifeChangePct float64 // Change in derived half-life vs the reference constants.
	RMSE              float64
}

// Calibrate fits the elimination and absorption constants of one compound to
// observed lab samples by nonlinear least squares: Nelder-Mead over
// {ln ke, ln ka} (log space keeps both rates positive) minimizing the squared
// residual between the superposed model prediction and the measured values.
// The start point is the compound's reference constants, so the fit is fully
// deterministic. Lab values are assumed to share the model's output units; the
// calibration factor in opts is the only units correction applied.
func Calibrate(samples []models.LabSample, adminTimes []time.Time, comp *models.Compound, doseMg float64, route models.Route, opts Options) CalibrationResult {
	if len(samples) < minCalibrationSamples || comp == nil {
		return CalibrationResult{Status: CalibrationInsufficientData}
	}
	kin, ok := comp.Kinetics(route)
	if !ok || comp.HalfLifeDays <= 0 {
		return CalibrationResult{Status: CalibrationInsufficientData}
	}

	sorted := make([]models.LabSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TakenAt.Before(sorted[j].TakenAt) })

	ke0 := math.Ln2 / comp.HalfLifeDays
	ka0 := kin.AbsorptionRate
	if ka0 <= ke0 {
		// The reference constants describe a bolus-like compound; seed the
		// absorption rate above elimination so the fit can explore both
		// branches.
		ka0 = 2 * ke0
	}

	predict := func(ke, ka float64, at time.Time) float64 {
		params := DoseParams{
			DoseMg:            doseMg,
			HalfLifeDays:      math.Ln2 / ke,
			AbsorptionRate:    ka,
			Bioavailability:   kin.Bioavailability,
			BodyWeightKg:      opts.BodyWeightKg,
			CalibrationFactor: opts.CalibrationFactor,
			TwoCompartment:    opts.TwoCompartment,
		}
		var c float64
		for _, admin := range adminTimes {
			if admin.After(at) {
				continue
			}
			c += Concentration(utils.DaysBetween(admin, at), params)
		}
		return c
	}

	meanSquaredError := func(x []float64) float64 {
		ke, ka := math.Exp(x[0]), math.Exp(x[1])
		var sse float64
		for _, s := range sorted {
			r := predict(ke, ka, s.TakenAt) - s.Value
			sse += r * r
		}
		return sse / float64(len(sorted))
	}

	x0 := []float64{math.Log(ke0), math.Log(ka0)}
	problem := optimize.Problem{Func: meanSquaredError}

	best := x0
	if result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{}); err == nil && result != nil {
		best = result.X
	}

	ke, ka := math.Exp(best[0]), math.Exp(best[1])
	halfLife := math.Ln2 / ke
	return CalibrationResult{
		Status:            CalibrationOK,
		Ke:                ke,
		Ka:                ka,
		HalfLifeDays:      halfLife,
		HalfLifeChangePct: (halfLife - comp.HalfLifeDays) / comp.HalfLifeDays * 100,
		RMSE:              math.Sqrt(meanSquaredError(best)),
	}
}
