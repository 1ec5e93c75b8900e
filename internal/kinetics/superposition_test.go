package kinetics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarinho0/androsim/internal/models"
)

func TestResolveDoseBlendProportionality(t *testing.T) {
	testE := testCompound("test-e", models.ClassTestosterone, 4.5)
	testC := testCompound("test-c", models.ClassTestosterone, 5.0)
	refs := newFakeRefs(
		[]*models.Compound{testE, testC},
		[]*models.Blend{{
			ID:   "sus",
			Name: "sus",
			Components: []models.BlendComponent{
				{CompoundID: "test-e", ConcentrationMgML: 60},
				{CompoundID: "test-c", ConcentrationMgML: 40},
			},
		}},
	)

	dose := models.SubDose{
		Target:        models.BlendTarget("sus"),
		DoseMg:        200,
		FrequencyDays: 7,
		Route:         models.RouteIntramuscular,
	}
	components, missing := ResolveDose(dose, refs)

	require.Empty(t, missing)
	require.Len(t, components, 2)
	assert.Equal(t, "test-e", components[0].Compound.ID)
	assert.InDelta(t, 120.0, components[0].DoseMg, 1e-9)
	assert.Equal(t, "test-c", components[1].Compound.ID)
	assert.InDelta(t, 80.0, components[1].DoseMg, 1e-9)
}

func TestResolveDoseMissingReferences(t *testing.T) {
	refs := newFakeRefs(nil, []*models.Blend{{
		ID:   "partial",
		Name: "partial",
		Components: []models.BlendComponent{
			{CompoundID: "ghost", ConcentrationMgML: 100},
		},
	}})

	_, missing := ResolveDose(models.SubDose{
		Target: models.CompoundTarget("nope"),
		DoseMg: 100,
	}, refs)
	assert.Equal(t, []string{"nope"}, missing)

	components, missing := ResolveDose(models.SubDose{
		Target: models.BlendTarget("partial"),
		DoseMg: 100,
	}, refs)
	assert.Empty(t, components)
	assert.Equal(t, []string{"ghost"}, missing)
}

func TestResolveDoseEmptyBlend(t *testing.T) {
	refs := newFakeRefs(nil, []*models.Blend{{ID: "empty", Name: "empty"}})
	components, missing := ResolveDose(models.SubDose{
		Target: models.BlendTarget("empty"),
		DoseMg: 100,
	}, refs)
	assert.Empty(t, components)
	assert.Empty(t, missing)
}

func TestSuperposeCausality(t *testing.T) {
	comp := testCompound("test-e", models.ClassTestosterone, 4.5)
	evalTimes := []time.Time{day(0), day(1), day(2)}
	adminTimes := []time.Time{day(1.5)}

	values := Superpose(evalTimes, adminTimes, []ComponentDose{{Compound: comp, DoseMg: 250}},
		models.RouteIntramuscular, Options{BodyWeightKg: 80})

	require.Len(t, values, 3)
	assert.Zero(t, values[0])
	assert.Zero(t, values[1])
	assert.Greater(t, values[2], 0.0)
}

func TestSuperposeAccumulatesAdministrations(t *testing.T) {
	comp := testCompound("test-e", models.ClassTestosterone, 4.5)
	opts := Options{BodyWeightKg: 80}
	at := []time.Time{day(10)}

	single := Superpose(at, []time.Time{day(0)}, []ComponentDose{{Compound: comp, DoseMg: 250}},
		models.RouteIntramuscular, opts)
	repeated := Superpose(at, []time.Time{day(0), day(7)}, []ComponentDose{{Compound: comp, DoseMg: 250}},
		models.RouteIntramuscular, opts)

	// Each extra administration only adds signal.
	assert.Greater(t, repeated[0], single[0])

	// Superposition is the exact sum of the individual contributions.
	second := Superpose(at, []time.Time{day(7)}, []ComponentDose{{Compound: comp, DoseMg: 250}},
		models.RouteIntramuscular, opts)
	assert.InDelta(t, single[0]+second[0], repeated[0], 1e-9)
}

func TestSuperposeSkipsRoutesWithoutKinetics(t *testing.T) {
	comp := testCompound("test-e", models.ClassTestosterone, 4.5)
	values := Superpose([]time.Time{day(5)}, []time.Time{day(0)},
		[]ComponentDose{{Compound: comp, DoseMg: 250}}, models.RouteOral, Options{BodyWeightKg: 80})
	assert.Zero(t, values[0])
}
