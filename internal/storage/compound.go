package storage

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dmarinho0/androsim/internal/models"
)

// referenceCompounds is the seeded compound library. Half-lives in days,
// absorption rates in day⁻¹, bioavailability as a fraction. Reference data
// only; user-defined compounds go through the same tables.
var referenceCompounds = []models.Compound{
	{
		ID: "testosterone-propionate", Name: "Testosterone propionate",
		Class: models.ClassTestosterone, Ester: "propionate", HalfLifeDays: 0.8,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 1.8},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 1.4},
		},
	},
	{
		ID: "testosterone-enanthate", Name: "Testosterone enanthate",
		Class: models.ClassTestosterone, Ester: "enanthate", HalfLifeDays: 4.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 0.5},
		},
	},
	{
		ID: "testosterone-cypionate", Name: "Testosterone cypionate",
		Class: models.ClassTestosterone, Ester: "cypionate", HalfLifeDays: 5.0,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.65},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 0.45},
		},
	},
	{
		ID: "testosterone-undecanoate", Name: "Testosterone undecanoate",
		Class: models.ClassTestosterone, Ester: "undecanoate", HalfLifeDays: 20.9,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.12},
			// Oral undecanoate survives first pass only via lymphatic uptake.
			models.RouteOral: {Bioavailability: 0.07, AbsorptionRate: 8.0},
		},
	},
	{
		ID: "nandrolone-decanoate", Name: "Nandrolone decanoate",
		Class: models.ClassNandrolone, Ester: "decanoate", HalfLifeDays: 7.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.45},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 0.35},
		},
	},
	{
		ID: "nandrolone-phenylpropionate", Name: "Nandrolone phenylpropionate",
		Class: models.ClassNandrolone, Ester: "phenylpropionate", HalfLifeDays: 1.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 1.3},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 1.0},
		},
	},
	{
		ID: "trenbolone-acetate", Name: "Trenbolone acetate",
		Class: models.ClassTrenbolone, Ester: "acetate", HalfLifeDays: 1.0,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 1.6},
		},
	},
	{
		ID: "trenbolone-enanthate", Name: "Trenbolone enanthate",
		Class: models.ClassTrenbolone, Ester: "enanthate", HalfLifeDays: 4.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
		},
	},
	{
		ID: "boldenone-undecylenate", Name: "Boldenone undecylenate",
		Class: models.ClassBoldenone, Ester: "undecylenate", HalfLifeDays: 14.0,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.18},
		},
	},
	{
		ID: "drostanolone-propionate", Name: "Drostanolone propionate",
		Class: models.ClassDrostanolone, Ester: "propionate", HalfLifeDays: 0.8,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 1.8},
		},
	},
	{
		ID: "drostanolone-enanthate", Name: "Drostanolone enanthate",
		Class: models.ClassDrostanolone, Ester: "enanthate", HalfLifeDays: 4.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
		},
	},
	{
		ID: "stanozolol", Name: "Stanozolol",
		Class: models.ClassStanozolol, HalfLifeDays: 0.375,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteOral:          {Bioavailability: 0.78, AbsorptionRate: 10.0},
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 4.0},
		},
	},
	{
		ID: "metenolone-enanthate", Name: "Metenolone enanthate",
		Class: models.ClassMetenolone, Ester: "enanthate", HalfLifeDays: 4.5,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.7},
		},
	},
	{
		ID: "trestolone-acetate", Name: "Trestolone acetate",
		Class: models.ClassTrestolone, Ester: "acetate", HalfLifeDays: 1.0,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 1.6},
			models.RouteSubcutaneous:  {Bioavailability: 0.90, AbsorptionRate: 1.2},
		},
	},
	{
		ID: "dhb-cypionate", Name: "Dihydroboldenone cypionate",
		Class: models.ClassDHB, Ester: "cypionate", HalfLifeDays: 5.0,
		Routes: map[models.Route]models.RouteKinetics{
			models.RouteIntramuscular: {Bioavailability: 0.95, AbsorptionRate: 0.65},
		},
	},
}

// SeedReferenceCompounds loads the reference library, skipping entries that
// already exist so user edits survive re-seeding.
func (s *Storage) SeedReferenceCompounds() error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, comp := range referenceCompounds {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO compounds (id, name, class, ester, half_life_days)
             VALUES (?, ?, ?, ?, ?)`,
			comp.ID, comp.Name, string(comp.Class), comp.Ester, comp.HalfLifeDays,
		)
		if err != nil {
			return fmt.Errorf("failed to seed compound %s: %w", comp.ID, err)
		}
		for route, kin := range comp.Routes {
			_, err := tx.Exec(
				`INSERT OR IGNORE INTO compound_routes (compound_id, route, bioavailability, absorption_rate)
                 VALUES (?, ?, ?, ?)`,
				comp.ID, string(route), kin.Bioavailability, kin.AbsorptionRate,
			)
			if err != nil {
				return fmt.Errorf("failed to seed routes for %s: %w", comp.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetCompound loads a compound by id, falling back to a name match.
func (s *Storage) GetCompound(idOrName string) (*models.Compound, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, class, ester, half_life_days
         FROM compounds WHERE id = ? OR name = ?`,
		idOrName, idOrName,
	)

	var comp models.Compound
	var ester sql.NullString
	var class string
	if err := row.Scan(&comp.ID, &comp.Name, &class, &ester, &comp.HalfLifeDays); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("compound %q not found", idOrName)
		}
		return nil, fmt.Errorf("failed to load compound: %w", err)
	}
	comp.Class = models.PotencyClass(class)
	comp.Ester = ester.String

	rows, err := s.DB.Query(
		`SELECT route, bioavailability, absorption_rate
         FROM compound_routes WHERE compound_id = ?`,
		comp.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load compound routes: %w", err)
	}
	defer rows.Close()

	comp.Routes = map[models.Route]models.RouteKinetics{}
	for rows.Next() {
		var route string
		var kin models.RouteKinetics
		if err := rows.Scan(&route, &kin.Bioavailability, &kin.AbsorptionRate); err != nil {
			return nil, fmt.Errorf("failed to scan compound route: %w", err)
		}
		comp.Routes[models.Route(route)] = kin
	}

	return &comp, nil
}

// ListCompounds returns the whole reference table ordered by name.
func (s *Storage) ListCompounds() ([]models.Compound, error) {
	rows, err := s.DB.Query(`SELECT id FROM compounds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query compounds: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan compound id: %w", err)
		}
		ids = append(ids, id)
	}

	var compounds []models.Compound
	for _, id := range ids {
		comp, err := s.GetCompound(id)
		if err != nil {
			return nil, err
		}
		compounds = append(compounds, *comp)
	}
	return compounds, nil
}

// CompoundExists reports whether an id or name resolves.
func (s *Storage) CompoundExists(idOrName string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM compounds WHERE id = ? OR name = ?)",
		idOrName, idOrName,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check compound existence: %w", err)
	}
	return exists, nil
}

// Compound satisfies the engine's ReferenceTable lookup. Load failures resolve
// to "not found" so one bad reference degrades instead of aborting a
// simulation; the warning makes it observable.
func (s *Storage) Compound(id string) (*models.Compound, bool) {
	comp, err := s.GetCompound(id)
	if err != nil {
		logrus.WithField("compound", id).WithError(err).Warn("compound lookup failed")
		return nil, false
	}
	return comp, true
}
