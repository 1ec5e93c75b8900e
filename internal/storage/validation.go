package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarinho0/androsim/internal/models"
)

// regimenFromTOML validates an imported definition and builds the model. A
// well-formed dose names exactly one compound or one blend, never both and
// never neither; references are resolved to canonical ids at import time so a
// later rename of the file entry cannot orphan the regimen.
func (s *Storage) regimenFromTOML(regTOML *models.RegimenTOML) (*models.Regimen, error) {
	if regTOML.Name == "" {
		return nil, fmt.Errorf("regimen name not specified in TOML file")
	}
	if regTOML.Start.IsZero() {
		return nil, fmt.Errorf("regimen %q needs a start date", regTOML.Name)
	}
	if regTOML.Simple != nil && len(regTOML.Stages) > 0 {
		return nil, fmt.Errorf("regimen %q mixes [simple] with [[stage]] tables", regTOML.Name)
	}

	reg := &models.Regimen{
		ID:    uuid.New().String(),
		Name:  regTOML.Name,
		Start: regTOML.Start,
		Notes: regTOML.Notes,
	}

	if regTOML.Simple != nil {
		dose, err := s.doseFromTOML(models.SubDoseTOML{
			Compound:      regTOML.Simple.Compound,
			Blend:         regTOML.Simple.Blend,
			DoseMg:        regTOML.Simple.DoseMg,
			FrequencyDays: regTOML.Simple.FrequencyDays,
			Route:         regTOML.Simple.Route,
		})
		if err != nil {
			return nil, fmt.Errorf("regimen %q: %w", regTOML.Name, err)
		}
		reg.Kind = models.RegimenSimple
		reg.Simple = &models.SimpleRegimen{Dose: dose}
		return reg, nil
	}

	if len(regTOML.Stages) == 0 {
		return nil, fmt.Errorf("regimen %q needs either a [simple] table or [[stage]] tables", regTOML.Name)
	}
	if regTOML.Weeks <= 0 {
		return nil, fmt.Errorf("regimen %q needs a positive total_weeks", regTOML.Name)
	}

	reg.Kind = models.RegimenAdvanced
	reg.Advanced = &models.AdvancedRegimen{TotalWeeks: regTOML.Weeks}
	for i, st := range regTOML.Stages {
		if st.StartWeek < 0 {
			return nil, fmt.Errorf("regimen %q stage %d: negative start_week", regTOML.Name, i+1)
		}
		if st.DurationWeeks < 0 {
			return nil, fmt.Errorf("regimen %q stage %d: negative duration_weeks", regTOML.Name, i+1)
		}
		if st.StartWeek+st.DurationWeeks > regTOML.Weeks {
			return nil, fmt.Errorf("regimen %q stage %d: extends past total_weeks", regTOML.Name, i+1)
		}

		stage := models.Stage{
			ID:            uuid.New().String(),
			StartWeek:     st.StartWeek,
			DurationWeeks: st.DurationWeeks,
		}
		for _, dt := range append(append([]models.SubDoseTOML{}, st.CompoundDoses...), st.BlendDoses...) {
			dose, err := s.doseFromTOML(dt)
			if err != nil {
				return nil, fmt.Errorf("regimen %q stage %d: %w", regTOML.Name, i+1, err)
			}
			stage.Doses = append(stage.Doses, dose)
		}
		reg.Advanced.Stages = append(reg.Advanced.Stages, stage)
	}

	return reg, nil
}

func (s *Storage) doseFromTOML(dt models.SubDoseTOML) (models.SubDose, error) {
	var dose models.SubDose

	switch {
	case dt.Compound != "" && dt.Blend != "":
		return dose, fmt.Errorf("dose names both a compound and a blend")
	case dt.Compound != "":
		comp, err := s.GetCompound(dt.Compound)
		if err != nil {
			return dose, err
		}
		dose.Target = models.CompoundTarget(comp.ID)
	case dt.Blend != "":
		blend, err := s.GetBlend(dt.Blend)
		if err != nil {
			return dose, err
		}
		dose.Target = models.BlendTarget(blend.ID)
	default:
		return dose, fmt.Errorf("dose names neither a compound nor a blend")
	}

	if dt.DoseMg <= 0 {
		return dose, fmt.Errorf("dose_mg must be positive")
	}
	route := models.Route(dt.Route)
	if !route.Valid() {
		return dose, fmt.Errorf("unknown route %q", dt.Route)
	}

	dose.DoseMg = dt.DoseMg
	dose.FrequencyDays = dt.FrequencyDays
	dose.Route = route
	return dose, nil
}
