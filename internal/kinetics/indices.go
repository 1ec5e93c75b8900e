package kinetics

import "github.com/dmarinho0/androsim/internal/models"

// WeeklyDose normalizes a dose to its weekly equivalent. A non-positive
// frequency is a single administration and has no weekly rate.
func WeeklyDose(doseMg, frequencyDays float64) float64 {
	if frequencyDays <= 0 {
		return 0
	}
	return doseMg * 7 / frequencyDays
}

// Indices pairs the two potency-weighted effect indices of a dose, stage, or
// regimen.
type Indices struct {
	Anabolic   float64
	Androgenic float64
}

func (a Indices) add(b Indices) Indices {
	return Indices{Anabolic: a.Anabolic + b.Anabolic, Androgenic: a.Androgenic + b.Androgenic}
}

func (a Indices) scale(f float64) Indices {
	return Indices{Anabolic: a.Anabolic * f, Androgenic: a.Androgenic * f}
}

// DoseIndices is the weekly-equivalent dose of each resolved component
// weighted by its class multipliers. Unresolved references and unknown classes
// contribute zero.
func DoseIndices(dose models.SubDose, refs ReferenceTable) Indices {
	components, _ := ResolveDose(dose, refs)

	var idx Indices
	for _, cd := range components {
		info, ok := cd.Compound.Class.Info()
		if !ok {
			continue
		}
		weekly := WeeklyDose(cd.DoseMg, dose.FrequencyDays)
		idx.Anabolic += weekly * info.Anabolic
		idx.Androgenic += weekly * info.Androgenic
	}
	return idx
}

// StageIndices sums the indices of every sub-dose in a stage.
func StageIndices(stage models.Stage, refs ReferenceTable) Indices {
	var idx Indices
	for _, d := range stage.Doses {
		idx = idx.add(DoseIndices(d, refs))
	}
	return idx
}

// RegimenIndices computes the regimen's effect indices. Simple regimens use
// their single dose; advanced regimens average stage indices weighted by stage
// duration. Zero-duration stages contribute to neither numerator nor
// denominator, and a zero total duration yields zero indices.
func RegimenIndices(reg *models.Regimen, refs ReferenceTable) Indices {
	switch reg.Kind {
	case models.RegimenSimple:
		if reg.Simple == nil {
			return Indices{}
		}
		return DoseIndices(reg.Simple.Dose, refs)

	case models.RegimenAdvanced:
		if reg.Advanced == nil {
			return Indices{}
		}
		var weighted Indices
		var totalWeeks float64
		for _, stage := range reg.Advanced.Stages {
			if stage.DurationWeeks <= 0 {
				continue
			}
			dur := float64(stage.DurationWeeks)
			weighted = weighted.add(StageIndices(stage, refs).scale(dur))
			totalWeeks += dur
		}
		if totalWeeks == 0 {
			return Indices{}
		}
		return weighted.scale(1 / totalWeeks)
	}
	return Indices{}
}
