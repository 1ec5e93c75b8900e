package kinetics

import "math"

const (
	// Volume of distribution is allometrically scaled from a 70 kg reference.
	refBodyWeightKg        = 70.0
	refDistributionVolumeL = 70.0

	// Fixed inter-compartment transfer rates for the two-compartment model,
	// day⁻¹. Chosen so the hybrid constants stay real and positive for every
	// half-life in the reference library.
	k12PerDay = 1.2
	k21PerDay = 0.8

	// Partial-fraction denominators closer than this to zero fall back to the
	// one-compartment branch.
	rateEpsilon = 1e-9
)

// DoseParams describes a single administration event for the concentration
// model.
type DoseParams struct {
	DoseMg            float64
	HalfLifeDays      float64
	AbsorptionRate    float64 // ka, day⁻¹
	Bioavailability   float64 // F, fraction 0-1
	BodyWeightKg      float64
	CalibrationFactor float64 // Applied last in every branch; ≤ 0 means uncalibrated (1.0).
	TwoCompartment    bool
}

func (p DoseParams) eliminationRate() float64 {
	return math.Ln2 / p.HalfLifeDays
}

func (p DoseParams) distributionVolume() float64 {
	weight := p.BodyWeightKg
	if weight <= 0 {
		weight = refBodyWeightKg
	}
	return refDistributionVolumeL * weight / refBodyWeightKg
}

func (p DoseParams) calibration() float64 {
	if p.CalibrationFactor <= 0 {
		return 1.0
	}
	return p.CalibrationFactor
}

// Concentration returns the modeled concentration contributed by one
// administration after elapsedDays. It is zero before the administration and
// for degenerate half-lives, and never negative.
func Concentration(elapsedDays float64, p DoseParams) float64 {
	if elapsedDays <= 0 || p.HalfLifeDays <= 0 {
		return 0
	}

	ke := p.eliminationRate()
	vd := p.distributionVolume()
	amount := p.Bioavailability * p.DoseMg / vd

	var c float64
	switch {
	case p.AbsorptionRate <= ke:
		// Absorption at least as fast as elimination degenerates into an
		// instantaneous bolus.
		c = amount * math.Exp(-ke*elapsedDays)
	case p.TwoCompartment:
		c = twoCompartment(elapsedDays, amount, p.AbsorptionRate, ke)
	default:
		c = oneCompartment(elapsedDays, amount, p.AbsorptionRate, ke)
	}

	return math.Max(0, c) * p.calibration()
}

// oneCompartment is the Bateman equation for first-order absorption and
// elimination.
func oneCompartment(t, amount, ka, ke float64) float64 {
	return amount * ka / (ka - ke) * (math.Exp(-ke*t) - math.Exp(-ka*t))
}

// twoCompartment adds a peripheral compartment with fixed transfer rates. The
// hybrid constants α, β come from the quadratic-root relation on (k12, k21, ke)
// and the curve is the three-exponential superposition weighted by
// partial-fraction coefficients.
func twoCompartment(t, amount, ka, ke float64) float64 {
	sum := k12PerDay + k21PerDay + ke
	beta := 0.5 * (sum - math.Sqrt(sum*sum-4*k21PerDay*ke))
	alpha := k21PerDay * ke / beta

	if math.Abs(ka-alpha) < rateEpsilon ||
		math.Abs(ka-beta) < rateEpsilon ||
		math.Abs(alpha-beta) < rateEpsilon {
		return oneCompartment(t, amount, ka, ke)
	}

	coefAlpha := (k21PerDay - alpha) / ((ka - alpha) * (beta - alpha))
	coefBeta := (k21PerDay - beta) / ((ka - beta) * (alpha - beta))
	coefKa := (k21PerDay - ka) / ((alpha - ka) * (beta - ka))

	return amount * ka * (coefAlpha*math.Exp(-alpha*t) +
		coefBeta*math.Exp(-beta*t) +
		coefKa*math.Exp(-ka*t))
}

// PeakTime returns the time of maximum concentration for the one-compartment
// model, ln(ka/ke)/(ka−ke). Degenerate inputs return 0.
func PeakTime(halfLifeDays, ka float64) float64 {
	if halfLifeDays <= 0 {
		return 0
	}
	ke := math.Ln2 / halfLifeDays
	if ka <= ke {
		return 0
	}
	return math.Log(ka/ke) / (ka - ke)
}
