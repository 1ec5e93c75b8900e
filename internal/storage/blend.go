package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dmarinho0/androsim/internal/models"
)

// CreateBlend imports a blend definition from TOML. Every component must
// reference a known compound and carry a positive concentration.
func (s *Storage) CreateBlend(tomlData []byte) error {
	var blendTOML models.BlendTOML
	if err := toml.Unmarshal(tomlData, &blendTOML); err != nil {
		return fmt.Errorf("invalid TOML format: %w", err)
	}

	if blendTOML.Name == "" {
		return fmt.Errorf("blend name not specified in TOML file")
	}
	if len(blendTOML.Components) == 0 {
		return fmt.Errorf("blend %q has no components", blendTOML.Name)
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	blendID := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO blends (id, name) VALUES (?, ?)`,
		blendID, blendTOML.Name,
	); err != nil {
		return fmt.Errorf("failed to create blend: %w", err)
	}

	for _, c := range blendTOML.Components {
		comp, err := s.GetCompound(c.Compound)
		if err != nil {
			return fmt.Errorf("blend component: %w", err)
		}
		if c.ConcentrationMgML <= 0 {
			return fmt.Errorf("component %q needs a positive concentration_mg_ml", c.Compound)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO blend_components (blend_id, compound_id, concentration_mg_ml)
             VALUES (?, ?, ?)`,
			blendID, comp.ID, c.ConcentrationMgML,
		); err != nil {
			return fmt.Errorf("failed to add blend component: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBlend loads a blend by id, falling back to a name match.
func (s *Storage) GetBlend(idOrName string) (*models.Blend, error) {
	row := s.DB.QueryRow(
		`SELECT id, name FROM blends WHERE id = ? OR name = ?`,
		idOrName, idOrName,
	)

	var blend models.Blend
	if err := row.Scan(&blend.ID, &blend.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("blend %q not found", idOrName)
		}
		return nil, fmt.Errorf("failed to load blend: %w", err)
	}

	rows, err := s.DB.Query(
		`SELECT compound_id, concentration_mg_ml
         FROM blend_components WHERE blend_id = ?`,
		blend.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load blend components: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.BlendComponent
		if err := rows.Scan(&c.CompoundID, &c.ConcentrationMgML); err != nil {
			return nil, fmt.Errorf("failed to scan blend component: %w", err)
		}
		blend.Components = append(blend.Components, c)
	}

	return &blend, nil
}

// ListBlends returns every blend with components loaded.
func (s *Storage) ListBlends() ([]models.Blend, error) {
	rows, err := s.DB.Query(`SELECT id FROM blends ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blends: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan blend id: %w", err)
		}
		ids = append(ids, id)
	}

	var blends []models.Blend
	for _, id := range ids {
		blend, err := s.GetBlend(id)
		if err != nil {
			return nil, err
		}
		blends = append(blends, *blend)
	}
	return blends, nil
}

// BlendExists reports whether an id or name resolves.
func (s *Storage) BlendExists(idOrName string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM blends WHERE id = ? OR name = ?)",
		idOrName, idOrName,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check blend existence: %w", err)
	}
	return exists, nil
}

// Blend satisfies the engine's ReferenceTable lookup.
func (s *Storage) Blend(id string) (*models.Blend, bool) {
	blend, err := s.GetBlend(id)
	if err != nil {
		logrus.WithField("blend", id).WithError(err).Warn("blend lookup failed")
		return nil, false
	}
	return blend, true
}
