package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotencyClassInfo(t *testing.T) {
	info, ok := ClassTestosterone.Info()
	require.True(t, ok)
	assert.Equal(t, 1.0, info.Anabolic)
	assert.Equal(t, 1.0, info.Androgenic)

	info, ok = ClassTrenbolone.Info()
	require.True(t, ok)
	assert.Equal(t, 5.0, info.Anabolic)
	assert.Equal(t, 5.0, info.Androgenic)

	_, ok = PotencyClass("unknown").Info()
	assert.False(t, ok)
	assert.False(t, PotencyClass("unknown").Valid())
}

func TestCompoundKinetics(t *testing.T) {
	c := &Compound{
		ID:           "test-e",
		HalfLifeDays: 4.5,
		Routes: map[Route]RouteKinetics{
			RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
		},
	}

	kin, ok := c.Kinetics(RouteIntramuscular)
	require.True(t, ok)
	assert.Equal(t, 0.95, kin.Bioavailability)

	_, ok = c.Kinetics(RouteOral)
	assert.False(t, ok)
}

func TestRouteValid(t *testing.T) {
	assert.True(t, RouteIntramuscular.Valid())
	assert.True(t, RouteSubcutaneous.Valid())
	assert.True(t, RouteOral.Valid())
	assert.False(t, Route("intravenous").Valid())
}

func TestBlendTotalConcentration(t *testing.T) {
	b := &Blend{Components: []BlendComponent{
		{CompoundID: "a", ConcentrationMgML: 60},
		{CompoundID: "b", ConcentrationMgML: 40},
	}}
	assert.Equal(t, 100.0, b.TotalConcentration())
	assert.Zero(t, (&Blend{}).TotalConcentration())
}
