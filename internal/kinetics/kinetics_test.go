package kinetics

import (
	"time"

	"github.com/dmarinho0/androsim/internal/models"
)

// fakeRefs is an in-memory ReferenceTable for tests.
type fakeRefs struct {
	compounds map[string]*models.Compound
	blends    map[string]*models.Blend
}

func (f *fakeRefs) Compound(id string) (*models.Compound, bool) {
	c, ok := f.compounds[id]
	return c, ok
}

func (f *fakeRefs) Blend(id string) (*models.Blend, bool) {
	b, ok := f.blends[id]
	return b, ok
}

func newFakeRefs(compounds []*models.Compound, blends []*models.Blend) *fakeRefs {
	refs := &fakeRefs{
		compounds: map[string]*models.Compound{},
		blends:    map[string]*models.Blend{},
	}
	for _, c := range compounds {
		refs.compounds[c.ID] = c
	}
	for _, b := range blends {
		refs.blends[b.ID] = b
	}
	return refs
}

func testCompound(id string, class models.PotencyClass, halfLifeDays float64) *models.Compound {
	return &models.Compound{
		ID:           id,
		Name:         id,
		Class:        class,
		HalfLifeDays: halfLifeDays,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
		},
	}
}

func day(n float64) time.Time {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(n * 24 * float64(time.Hour)))
}
