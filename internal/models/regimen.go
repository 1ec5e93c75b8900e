package models

import "time"

type RegimenKind string

const (
	RegimenSimple   RegimenKind = "simple"
	RegimenAdvanced RegimenKind = "advanced"
)

// simpleDisplayDays is the display window convention for simple regimens, not a
// pharmacological claim.
const simpleDisplayDays = 90

// TargetKind tags what a dose refers to.
type TargetKind string

const (
	TargetCompound TargetKind = "compound"
	TargetBlend    TargetKind = "blend"
)

// DoseTarget is a tagged reference to exactly one compound or one blend.
type DoseTarget struct {
	Kind TargetKind `json:"kind"`
	Ref  string     `json:"ref"`
}

func CompoundTarget(id string) DoseTarget {
	return DoseTarget{Kind: TargetCompound, Ref: id}
}

func BlendTarget(id string) DoseTarget {
	return DoseTarget{Kind: TargetBlend, Ref: id}
}

func (t DoseTarget) Valid() bool {
	return (t.Kind == TargetCompound || t.Kind == TargetBlend) && t.Ref != ""
}

// SubDose is one repeated administration: what, how much, how often, and by
// which route. FrequencyDays ≤ 0 means a single administration.
type SubDose struct {
	Target        DoseTarget `json:"target"`
	DoseMg        float64    `json:"dose_mg"`
	FrequencyDays float64    `json:"frequency_days"`
	Route         Route      `json:"route"`
}

// Stage is a time-boxed sub-regimen of an advanced regimen. StartWeek is
// 0-based relative to the regimen start.
type Stage struct {
	ID            string    `json:"id"`
	StartWeek     int       `json:"start_week"`
	DurationWeeks int       `json:"duration_weeks"`
	Doses         []SubDose `json:"doses"`
}

// Window returns the stage's absolute time span given the regimen start.
func (s Stage) Window(regimenStart time.Time) (time.Time, time.Time) {
	start := regimenStart.AddDate(0, 0, s.StartWeek*7)
	end := start.AddDate(0, 0, s.DurationWeeks*7)
	return start, end
}

// LabSample is an observed measurement attached to a regimen.
type LabSample struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Value   float64   `json:"value"`
	Unit    string    `json:"unit"`
}

// SimpleRegimen is a single fixed-schedule administration plan.
type SimpleRegimen struct {
	Dose    SubDose     `json:"dose"`
	Samples []LabSample `json:"samples"`
}

// AdvancedRegimen is an ordered sequence of stages.
type AdvancedRegimen struct {
	TotalWeeks int     `json:"total_weeks"`
	Stages     []Stage `json:"stages"`
}

// Regimen is a dosing plan. Exactly one of Simple/Advanced is set, matching
// Kind; the engine treats regimens as read-only.
type Regimen struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Kind      RegimenKind      `json:"kind"`
	Start     time.Time        `json:"start"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Simple    *SimpleRegimen   `json:"simple,omitempty"`
	Advanced  *AdvancedRegimen `json:"advanced,omitempty"`
}

// End returns the regimen's display end date: start + 90 days for simple,
// start + totalWeeks·7 days for advanced.
func (r *Regimen) End() time.Time {
	if r.Kind == RegimenAdvanced && r.Advanced != nil {
		return r.Start.AddDate(0, 0, r.Advanced.TotalWeeks*7)
	}
	return r.Start.AddDate(0, 0, simpleDisplayDays)
}

// ActiveStage returns the stage covering t, or nil. Simple regimens have no
// stages; callers treat the whole [Start, End) span as active instead.
func (r *Regimen) ActiveStage(t time.Time) *Stage {
	if r.Kind != RegimenAdvanced || r.Advanced == nil {
		return nil
	}
	for i := range r.Advanced.Stages {
		start, end := r.Advanced.Stages[i].Window(r.Start)
		if !t.Before(start) && t.Before(end) {
			return &r.Advanced.Stages[i]
		}
	}
	return nil
}

//
// For TOML parsing only
//

type RegimenTOML struct {
	Name   string      `toml:"name"`
	Start  time.Time   `toml:"start"`
	Notes  string      `toml:"notes,omitempty"`
	Simple *SimpleTOML `toml:"simple,omitempty"`
	Weeks  int         `toml:"total_weeks,omitempty"`
	Stages []StageTOML `toml:"stage,omitempty"`
}

type SimpleTOML struct {
	Compound      string  `toml:"compound,omitempty"`
	Blend         string  `toml:"blend,omitempty"`
	DoseMg        float64 `toml:"dose_mg"`
	FrequencyDays float64 `toml:"frequency_days"`
	Route         string  `toml:"route"`
}

type StageTOML struct {
	StartWeek     int           `toml:"start_week"`
	DurationWeeks int           `toml:"duration_weeks"`
	CompoundDoses []SubDoseTOML `toml:"compound_dose,omitempty"`
	BlendDoses    []SubDoseTOML `toml:"blend_dose,omitempty"`
}

type SubDoseTOML struct {
	Compound      string  `toml:"compound,omitempty"`
	Blend         string  `toml:"blend,omitempty"`
	DoseMg        float64 `toml:"dose_mg"`
	FrequencyDays float64 `toml:"frequency_days"`
	Route         string  `toml:"route"`
}
