package kinetics

import (
	"time"

	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/utils"
)

// DefaultGridStepDays is the evaluation grid resolution used when the caller
// does not pick one (6-hour steps).
const DefaultGridStepDays = 0.25

// Layer labels and colors for the aggregate curves. Opaque annotations for the
// rendering side; per-compound layers take their color from the class table.
const (
	labelTotal      = "Total"
	labelAnabolic   = "Anabolic index"
	labelAndrogenic = "Androgenic index"

	colorTotal      = "white"
	colorAnabolic   = "green"
	colorAndrogenic = "red"
	colorFallback   = "white"
)

// Diagnostics reports degraded-but-non-fatal conditions of a simulation so the
// caller can surface them. An empty value means a complete result.
type Diagnostics struct {
	TruncatedSchedule bool
	TruncatedGrid     bool
	MissingRefs       []string
}

// doseGroup pairs one sub-dose with its generated administration timestamps.
type doseGroup struct {
	dose   models.SubDose
	admins []time.Time
}

// indexSpan is a time span with constant effect indices, for the step curves.
type indexSpan struct {
	start, end time.Time
	idx        Indices
}

// BuildLayers evaluates a regimen over [windowStart, windowEnd] on a fixed
// grid and returns the renderable layers: one concentration curve per
// compound, the aggregate total, and the two effect-index step curves.
// Administrations from regimen start onward contribute even when they precede
// the window, so the window is a viewport, not a causality cutoff.
func BuildLayers(reg *models.Regimen, refs ReferenceTable, windowStart, windowEnd time.Time, stepDays float64, opts Options) ([]models.Series, Diagnostics) {
	var diag Diagnostics

	grid, truncated := evaluationGrid(windowStart, windowEnd, stepDays)
	diag.TruncatedGrid = truncated
	if len(grid) == 0 {
		return nil, diag
	}

	groups := collectDoseGroups(reg, windowEnd, &diag)

	// Accumulate per-compound curves in first-appearance order.
	var order []string
	byCompound := map[string][]float64{}
	compounds := map[string]*models.Compound{}
	total := make([]float64, len(grid))

	for _, g := range groups {
		components, missing := ResolveDose(g.dose, refs)
		diag.MissingRefs = append(diag.MissingRefs, missing...)

		for _, cd := range components {
			values := Superpose(grid, g.admins, []ComponentDose{cd}, g.dose.Route, opts)
			acc, seen := byCompound[cd.Compound.ID]
			if !seen {
				acc = make([]float64, len(grid))
				order = append(order, cd.Compound.ID)
				compounds[cd.Compound.ID] = cd.Compound
			}
			for i, v := range values {
				acc[i] += v
				total[i] += v
			}
			byCompound[cd.Compound.ID] = acc
		}
	}

	layers := make([]models.Series, 0, len(order)+3)
	for _, id := range order {
		comp := compounds[id]
		color := colorFallback
		if info, ok := comp.Class.Info(); ok {
			color = info.Color
		}
		layers = append(layers, makeSeries(comp.Name, color, grid, byCompound[id]))
	}
	layers = append(layers, makeSeries(labelTotal, colorTotal, grid, total))

	anab, andro := indexCurves(reg, refs, grid)
	layers = append(layers,
		makeSeries(labelAnabolic, colorAnabolic, grid, anab),
		makeSeries(labelAndrogenic, colorAndrogenic, grid, andro))

	return layers, diag
}

// evaluationGrid builds the timestamps to evaluate at, capped like schedule
// generation so a tiny step over a huge window degrades instead of hanging.
func evaluationGrid(windowStart, windowEnd time.Time, stepDays float64) ([]time.Time, bool) {
	if windowEnd.Before(windowStart) {
		return nil, false
	}
	if stepDays <= 0 {
		stepDays = DefaultGridStepDays
	}

	var grid []time.Time
	for i := 0; i < maxScheduleSteps; i++ {
		t := utils.AddDays(windowStart, float64(i)*stepDays)
		if t.After(windowEnd) {
			return grid, false
		}
		grid = append(grid, t)
	}
	return grid, true
}

// collectDoseGroups expands the regimen into (sub-dose, administrations)
// pairs. Stage spans are half-open so a dose landing exactly on a stage
// boundary belongs to the following stage.
func collectDoseGroups(reg *models.Regimen, until time.Time, diag *Diagnostics) []doseGroup {
	var groups []doseGroup

	appendGroup := func(d models.SubDose, start, end time.Time) {
		if end.Before(start) {
			return
		}
		admins, truncated := ScheduleDates(start, d.FrequencyDays, start, end)
		if truncated {
			diag.TruncatedSchedule = true
		}
		if len(admins) > 0 {
			groups = append(groups, doseGroup{dose: d, admins: admins})
		}
	}

	switch reg.Kind {
	case models.RegimenSimple:
		if reg.Simple != nil {
			appendGroup(reg.Simple.Dose, reg.Start, until)
		}
	case models.RegimenAdvanced:
		if reg.Advanced != nil {
			for _, stage := range reg.Advanced.Stages {
				start, end := stage.Window(reg.Start)
				end = end.Add(-time.Nanosecond)
				if end.After(until) {
					end = until
				}
				for _, d := range stage.Doses {
					appendGroup(d, start, end)
				}
			}
		}
	}
	return groups
}

// indexCurves evaluates the effect-index step curves on the grid: at each
// timestamp the value is the index of whatever is active then, zero outside.
func indexCurves(reg *models.Regimen, refs ReferenceTable, grid []time.Time) (anab, andro []float64) {
	var spans []indexSpan

	switch reg.Kind {
	case models.RegimenSimple:
		if reg.Simple != nil {
			spans = append(spans, indexSpan{
				start: reg.Start,
				end:   reg.End(),
				idx:   DoseIndices(reg.Simple.Dose, refs),
			})
		}
	case models.RegimenAdvanced:
		if reg.Advanced != nil {
			for _, stage := range reg.Advanced.Stages {
				start, end := stage.Window(reg.Start)
				spans = append(spans, indexSpan{
					start: start,
					end:   end,
					idx:   StageIndices(stage, refs),
				})
			}
		}
	}

	anab = make([]float64, len(grid))
	andro = make([]float64, len(grid))
	for i, t := range grid {
		for _, span := range spans {
			if !t.Before(span.start) && t.Before(span.end) {
				anab[i] = span.idx.Anabolic
				andro[i] = span.idx.Androgenic
				break
			}
		}
	}
	return anab, andro
}

func makeSeries(label, color string, grid []time.Time, values []float64) models.Series {
	points := make([]models.Point, len(grid))
	for i, t := range grid {
		points[i] = models.Point{Time: t, Value: values[i]}
	}
	return models.Series{Label: label, Color: color, Points: points}
}
