package kinetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarinho0/androsim/internal/models"
)

func simpleTestRegimen(compoundID string) *models.Regimen {
	return &models.Regimen{
		Kind:  models.RegimenSimple,
		Start: day(0),
		Simple: &models.SimpleRegimen{
			Dose: models.SubDose{
				Target:        models.CompoundTarget(compoundID),
				DoseMg:        250,
				FrequencyDays: 7,
				Route:         models.RouteIntramuscular,
			},
		},
	}
}

func TestBuildLayersShape(t *testing.T) {
	testE := testCompound("test-e", models.ClassTestosterone, 4.5)
	refs := newFakeRefs([]*models.Compound{testE}, nil)
	reg := simpleTestRegimen("test-e")

	layers, diag := BuildLayers(reg, refs, day(0), day(28), 0.25, Options{BodyWeightKg: 80})

	require.Empty(t, diag.MissingRefs)
	require.Len(t, layers, 4) // compound, total, two index curves

	assert.Equal(t, "test-e", layers[0].Label)
	assert.Equal(t, "yellow", layers[0].Color)
	assert.Equal(t, "Total", layers[1].Label)
	assert.Equal(t, "Anabolic index", layers[2].Label)
	assert.Equal(t, "Androgenic index", layers[3].Label)

	// A single compound means its curve equals the total, pointwise.
	require.Equal(t, len(layers[0].Points), len(layers[1].Points))
	for i := range layers[0].Points {
		assert.InDelta(t, layers[0].Points[i].Value, layers[1].Points[i].Value, 1e-9)
	}
}

func TestBuildLayersWindowIsViewportNotCutoff(t *testing.T) {
	testE := testCompound("test-e", models.ClassTestosterone, 4.5)
	refs := newFakeRefs([]*models.Compound{testE}, nil)
	reg := simpleTestRegimen("test-e")

	// A window starting weeks into the regimen still sees the accumulated
	// signal of earlier administrations.
	layers, _ := BuildLayers(reg, refs, day(28), day(35), 0.25, Options{BodyWeightKg: 80})
	require.Len(t, layers, 4)
	first := layers[1].Points[0]
	assert.Equal(t, day(28), first.Time)
	assert.Greater(t, first.Value, 0.0)
}

func TestBuildLayersMissingCompound(t *testing.T) {
	refs := newFakeRefs(nil, nil)
	reg := simpleTestRegimen("ghost")

	layers, diag := BuildLayers(reg, refs, day(0), day(28), 0.25, Options{BodyWeightKg: 80})

	assert.Contains(t, diag.MissingRefs, "ghost")
	// No per-compound layer, but the aggregate layers are still present.
	require.Len(t, layers, 3)
	assert.Equal(t, "Total", layers[0].Label)
	for _, p := range layers[0].Points {
		assert.Zero(t, p.Value)
	}
}

func TestBuildLayersIndexStepCurve(t *testing.T) {
	testE := testCompound("test-e", models.ClassTestosterone, 4.5)
	refs := newFakeRefs([]*models.Compound{testE}, nil)

	d := func(mg float64) models.SubDose {
		return models.SubDose{
			Target:        models.CompoundTarget("test-e"),
			DoseMg:        mg,
			FrequencyDays: 7,
			Route:         models.RouteIntramuscular,
		}
	}
	reg := &models.Regimen{
		Kind:  models.RegimenAdvanced,
		Start: day(0),
		Advanced: &models.AdvancedRegimen{
			TotalWeeks: 4,
			Stages: []models.Stage{
				{StartWeek: 0, DurationWeeks: 2, Doses: []models.SubDose{d(100)}},
				{StartWeek: 2, DurationWeeks: 2, Doses: []models.SubDose{d(200)}},
			},
		},
	}

	layers, _ := BuildLayers(reg, refs, day(0), day(27), 1.0, Options{BodyWeightKg: 80})
	require.Len(t, layers, 4)
	anab := layers[2]
	require.Equal(t, "Anabolic index", anab.Label)

	valueAt := func(dayN float64) float64 {
		for _, p := range anab.Points {
			if p.Time.Equal(day(dayN)) {
				return p.Value
			}
		}
		t.Fatalf("no grid point at day %v", dayN)
		return 0
	}

	assert.InDelta(t, 100.0, valueAt(0), 1e-9)
	assert.InDelta(t, 100.0, valueAt(13), 1e-9)
	assert.InDelta(t, 200.0, valueAt(14), 1e-9) // stage boundary belongs to the next stage
	assert.InDelta(t, 200.0, valueAt(27), 1e-9)
}

func TestBuildLayersEmptyWindow(t *testing.T) {
	refs := newFakeRefs(nil, nil)
	reg := simpleTestRegimen("test-e")

	layers, diag := BuildLayers(reg, refs, day(10), day(5), 0.25, Options{})
	assert.Empty(t, layers)
	assert.False(t, diag.TruncatedGrid)
}
