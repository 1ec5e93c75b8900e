package kinetics

import (
	"time"

	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/utils"
)

// ReferenceTable resolves compound and blend identifiers to reference data.
// Implementations must be safe for concurrent readers; the engine never
// mutates what it is handed back.
type ReferenceTable interface {
	Compound(id string) (*models.Compound, bool)
	Blend(id string) (*models.Blend, bool)
}

// Options carries the caller-specific model inputs shared by a whole
// simulation.
type Options struct {
	BodyWeightKg      float64
	CalibrationFactor float64
	TwoCompartment    bool
}

// ComponentDose is one compound's share of an administered dose.
type ComponentDose struct {
	Compound *models.Compound
	DoseMg   float64
}

// ResolveDose expands a sub-dose into per-compound doses. Blend components get
// the proportional share doseMg·(concentration/total). Unresolved identifiers
// are returned in missing and contribute nothing; one bad reference never
// aborts the rest of a blend.
func ResolveDose(dose models.SubDose, refs ReferenceTable) (components []ComponentDose, missing []string) {
	switch dose.Target.Kind {
	case models.TargetCompound:
		comp, ok := refs.Compound(dose.Target.Ref)
		if !ok {
			return nil, []string{dose.Target.Ref}
		}
		return []ComponentDose{{Compound: comp, DoseMg: dose.DoseMg}}, nil

	case models.TargetBlend:
		blend, ok := refs.Blend(dose.Target.Ref)
		if !ok {
			return nil, []string{dose.Target.Ref}
		}
		total := blend.TotalConcentration()
		if total <= 0 {
			return nil, nil
		}
		for _, bc := range blend.Components {
			comp, ok := refs.Compound(bc.CompoundID)
			if !ok {
				missing = append(missing, bc.CompoundID)
				continue
			}
			components = append(components, ComponentDose{
				Compound: comp,
				DoseMg:   dose.DoseMg * bc.ConcentrationMgML / total,
			})
		}
		return components, missing
	}
	return nil, nil
}

// Superpose evaluates the aggregate concentration at each evaluation timestamp:
// the sum over every administration at or before it, over every component
// dose. Administrations strictly after an evaluation time contribute zero.
// Components without kinetics for the route contribute nothing.
func Superpose(evalTimes, adminTimes []time.Time, components []ComponentDose, route models.Route, opts Options) []float64 {
	values := make([]float64, len(evalTimes))

	for _, cd := range components {
		kin, ok := cd.Compound.Kinetics(route)
		if !ok {
			continue
		}
		params := DoseParams{
			DoseMg:            cd.DoseMg,
			HalfLifeDays:      cd.Compound.HalfLifeDays,
			AbsorptionRate:    kin.AbsorptionRate,
			Bioavailability:   kin.Bioavailability,
			BodyWeightKg:      opts.BodyWeightKg,
			CalibrationFactor: opts.CalibrationFactor,
			TwoCompartment:    opts.TwoCompartment,
		}
		for i, at := range evalTimes {
			for _, admin := range adminTimes {
				if admin.After(at) {
					continue
				}
				values[i] += Concentration(utils.DaysBetween(admin, at), params)
			}
		}
	}
	return values
}
