package models

// Route is the administration route of a dose.
type Route string

const (
	RouteIntramuscular Route = "intramuscular"
	RouteSubcutaneous  Route = "subcutaneous"
	RouteOral          Route = "oral"
)

func (r Route) Valid() bool {
	switch r {
	case RouteIntramuscular, RouteSubcutaneous, RouteOral:
		return true
	}
	return false
}

// RouteKinetics holds the absorption constants of a compound for one route.
type RouteKinetics struct {
	Bioavailability float64 `json:"bioavailability"` // Fraction 0-1 reaching circulation.
	AbsorptionRate  float64 `json:"absorption_rate"` // ka, day⁻¹.
}

// PotencyClass identifies the parent hormone of a compound.
type PotencyClass string

const (
	ClassTestosterone PotencyClass = "testosterone"
	ClassNandrolone   PotencyClass = "nandrolone"
	ClassTrenbolone   PotencyClass = "trenbolone"
	ClassBoldenone    PotencyClass = "boldenone"
	ClassDrostanolone PotencyClass = "drostanolone"
	ClassStanozolol   PotencyClass = "stanozolol"
	ClassMetenolone   PotencyClass = "metenolone"
	ClassTrestolone   PotencyClass = "trestolone"
	ClassDHB          PotencyClass = "dhb"
)

// ClassInfo carries the fixed potency multipliers of a class plus the color
// suggested for any curve drawn for it. Multipliers are the classic
// anabolic:androgenic ratings divided by 100 (testosterone = 1.0/1.0).
type ClassInfo struct {
	Anabolic   float64
	Androgenic float64
	Color      string
}

// classTable is the single source of truth for potency multipliers and curve
// colors. Both the index calculator and the rendering layer read from here.
var classTable = map[PotencyClass]ClassInfo{
	ClassTestosterone: {Anabolic: 1.0, Androgenic: 1.0, Color: "yellow"},
	ClassNandrolone:   {Anabolic: 1.25, Androgenic: 0.37, Color: "blue"},
	ClassTrenbolone:   {Anabolic: 5.0, Androgenic: 5.0, Color: "red"},
	ClassBoldenone:    {Anabolic: 1.0, Androgenic: 0.5, Color: "green"},
	ClassDrostanolone: {Anabolic: 0.62, Androgenic: 0.25, Color: "magenta"},
	ClassStanozolol:   {Anabolic: 3.2, Androgenic: 0.3, Color: "cyan"},
	ClassMetenolone:   {Anabolic: 0.88, Androgenic: 0.44, Color: "hi-green"},
	ClassTrestolone:   {Anabolic: 23.0, Androgenic: 6.5, Color: "hi-red"},
	ClassDHB:          {Anabolic: 2.0, Androgenic: 1.0, Color: "hi-blue"},
}

// Info returns the class multipliers and color. Unknown classes report ok=false
// and contribute nothing to any index.
func (c PotencyClass) Info() (ClassInfo, bool) {
	info, ok := classTable[c]
	return info, ok
}

func (c PotencyClass) Valid() bool {
	_, ok := classTable[c]
	return ok
}

// PotencyClasses returns every known class, for listings and validation messages.
func PotencyClasses() []PotencyClass {
	classes := make([]PotencyClass, 0, len(classTable))
	for c := range classTable {
		classes = append(classes, c)
	}
	return classes
}

// Compound is immutable reference data: loaded once, read-only thereafter.
type Compound struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Class        PotencyClass            `json:"class"`
	Ester        string                  `json:"ester,omitempty"`
	HalfLifeDays float64                 `json:"half_life_days"`
	Routes       map[Route]RouteKinetics `json:"routes"`
}

// Kinetics returns the absorption constants for a route, ok=false when the
// compound has no data for that route.
func (c *Compound) Kinetics(route Route) (RouteKinetics, bool) {
	kin, ok := c.Routes[route]
	return kin, ok
}

// Blend is a fixed mixture of compounds sharing one carrier, e.g. a
// multi-ester testosterone preparation.
type Blend struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Components []BlendComponent `json:"components"`
}

type BlendComponent struct {
	CompoundID        string  `json:"compound_id"`
	ConcentrationMgML float64 `json:"concentration_mg_ml"`
}

// TotalConcentration is the summed mg/mL of all components.
func (b *Blend) TotalConcentration() float64 {
	var total float64
	for _, c := range b.Components {
		total += c.ConcentrationMgML
	}
	return total
}

//
// For TOML parsing only
//

type BlendTOML struct {
	Name       string               `toml:"name"`
	Components []BlendComponentTOML `toml:"component"`
}

type BlendComponentTOML struct {
	Compound          string  `toml:"compound"`
	ConcentrationMgML float64 `toml:"concentration_mg_ml"`
}
