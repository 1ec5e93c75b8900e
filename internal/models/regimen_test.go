package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var regimenStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestStageWindow(t *testing.T) {
	stage := Stage{StartWeek: 2, DurationWeeks: 4}
	start, end := stage.Window(regimenStart)
	assert.Equal(t, regimenStart.AddDate(0, 0, 14), start)
	assert.Equal(t, regimenStart.AddDate(0, 0, 42), end)
}

func TestRegimenEnd(t *testing.T) {
	simple := &Regimen{Kind: RegimenSimple, Start: regimenStart}
	assert.Equal(t, regimenStart.AddDate(0, 0, 90), simple.End())

	advanced := &Regimen{
		Kind:     RegimenAdvanced,
		Start:    regimenStart,
		Advanced: &AdvancedRegimen{TotalWeeks: 12},
	}
	assert.Equal(t, regimenStart.AddDate(0, 0, 84), advanced.End())
}

func TestActiveStage(t *testing.T) {
	reg := &Regimen{
		Kind:  RegimenAdvanced,
		Start: regimenStart,
		Advanced: &AdvancedRegimen{
			TotalWeeks: 8,
			Stages: []Stage{
				{ID: "a", StartWeek: 0, DurationWeeks: 4},
				{ID: "b", StartWeek: 4, DurationWeeks: 4},
			},
		},
	}

	st := reg.ActiveStage(regimenStart.AddDate(0, 0, 10))
	require.NotNil(t, st)
	assert.Equal(t, "a", st.ID)

	// Stage spans are half-open: the boundary day belongs to the next stage.
	st = reg.ActiveStage(regimenStart.AddDate(0, 0, 28))
	require.NotNil(t, st)
	assert.Equal(t, "b", st.ID)

	assert.Nil(t, reg.ActiveStage(regimenStart.AddDate(0, 0, 56)))
	assert.Nil(t, reg.ActiveStage(regimenStart.AddDate(0, 0, -1)))

	simple := &Regimen{Kind: RegimenSimple, Start: regimenStart}
	assert.Nil(t, simple.ActiveStage(regimenStart))
}

func TestDoseTargetValid(t *testing.T) {
	assert.True(t, CompoundTarget("test-e").Valid())
	assert.True(t, BlendTarget("sus").Valid())
	assert.False(t, CompoundTarget("").Valid())
	assert.False(t, DoseTarget{Kind: "other", Ref: "x"}.Valid())
}
