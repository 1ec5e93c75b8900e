package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/dmarinho0/androsim/internal/models"
)

// CreateRegimen imports a regimen definition from TOML, either simple
// (a [simple] table) or advanced (total_weeks plus [[stage]] tables).
func (s *Storage) CreateRegimen(tomlData []byte) error {
	var regTOML models.RegimenTOML
	if err := toml.Unmarshal(tomlData, &regTOML); err != nil {
		return fmt.Errorf("invalid TOML format: %w", err)
	}

	reg, err := s.regimenFromTOML(&regTOML)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	if reg.Kind == models.RegimenSimple {
		d := reg.Simple.Dose
		_, err = tx.ExecContext(ctx,
			`INSERT INTO regimens
             (id, name, kind, start, notes, created_at, target_kind, target_ref, dose_mg, frequency_days, route)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			reg.ID, reg.Name, string(reg.Kind), reg.Start.UTC().Format(time.RFC3339),
			reg.Notes, createdAt,
			string(d.Target.Kind), d.Target.Ref, d.DoseMg, d.FrequencyDays, string(d.Route),
		)
		if err != nil {
			return fmt.Errorf("failed to create regimen: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO regimens (id, name, kind, start, notes, created_at, total_weeks)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			reg.ID, reg.Name, string(reg.Kind), reg.Start.UTC().Format(time.RFC3339),
			reg.Notes, createdAt, reg.Advanced.TotalWeeks,
		)
		if err != nil {
			return fmt.Errorf("failed to create regimen: %w", err)
		}

		for pos, stage := range reg.Advanced.Stages {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO stages (id, regimen_id, position, start_week, duration_weeks)
                 VALUES (?, ?, ?, ?, ?)`,
				stage.ID, reg.ID, pos, stage.StartWeek, stage.DurationWeeks,
			)
			if err != nil {
				return fmt.Errorf("failed to create stage: %w", err)
			}
			for _, d := range stage.Doses {
				_, err = tx.ExecContext(ctx,
					`INSERT INTO stage_doses (id, stage_id, target_kind, target_ref, dose_mg, frequency_days, route)
                     VALUES (?, ?, ?, ?, ?, ?, ?)`,
					uuid.New().String(), stage.ID,
					string(d.Target.Kind), d.Target.Ref, d.DoseMg, d.FrequencyDays, string(d.Route),
				)
				if err != nil {
					return fmt.Errorf("failed to create stage dose: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRegimenByName loads a regimen with stages, doses and lab samples.
func (s *Storage) GetRegimenByName(name string) (*models.Regimen, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, kind, start, notes, created_at,
                target_kind, target_ref, dose_mg, frequency_days, route, total_weeks
         FROM regimens WHERE name = ? OR id = ?`,
		name, name,
	)

	var reg models.Regimen
	var kind, start, createdAt string
	var notes, targetKind, targetRef, route sql.NullString
	var doseMg, freqDays sql.NullFloat64
	var totalWeeks sql.NullInt64

	err := row.Scan(&reg.ID, &reg.Name, &kind, &start, &notes, &createdAt,
		&targetKind, &targetRef, &doseMg, &freqDays, &route, &totalWeeks)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("regimen %q not found", name)
		}
		return nil, fmt.Errorf("failed to load regimen: %w", err)
	}

	reg.Kind = models.RegimenKind(kind)
	reg.Notes = notes.String
	reg.Start, _ = time.Parse(time.RFC3339, start)
	reg.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if reg.Kind == models.RegimenSimple {
		samples, err := s.loadSamples(reg.ID)
		if err != nil {
			return nil, err
		}
		reg.Simple = &models.SimpleRegimen{
			Dose: models.SubDose{
				Target: models.DoseTarget{
					Kind: models.TargetKind(targetKind.String),
					Ref:  targetRef.String,
				},
				DoseMg:        doseMg.Float64,
				FrequencyDays: freqDays.Float64,
				Route:         models.Route(route.String),
			},
			Samples: samples,
		}
		return &reg, nil
	}

	stages, err := s.loadStages(reg.ID)
	if err != nil {
		return nil, err
	}
	reg.Advanced = &models.AdvancedRegimen{
		TotalWeeks: int(totalWeeks.Int64),
		Stages:     stages,
	}
	return &reg, nil
}

func (s *Storage) loadStages(regimenID string) ([]models.Stage, error) {
	rows, err := s.DB.Query(
		`SELECT id, start_week, duration_weeks
         FROM stages WHERE regimen_id = ? ORDER BY position`,
		regimenID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stages: %w", err)
	}
	defer rows.Close()

	var stages []models.Stage
	for rows.Next() {
		var stage models.Stage
		if err := rows.Scan(&stage.ID, &stage.StartWeek, &stage.DurationWeeks); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, stage)
	}

	for i := range stages {
		doseRows, err := s.DB.Query(
			`SELECT target_kind, target_ref, dose_mg, frequency_days, route
             FROM stage_doses WHERE stage_id = ?`,
			stages[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query stage doses: %w", err)
		}
		for doseRows.Next() {
			var d models.SubDose
			var targetKind, route string
			if err := doseRows.Scan(&targetKind, &d.Target.Ref, &d.DoseMg, &d.FrequencyDays, &route); err != nil {
				doseRows.Close()
				return nil, fmt.Errorf("failed to scan stage dose: %w", err)
			}
			d.Target.Kind = models.TargetKind(targetKind)
			d.Route = models.Route(route)
			stages[i].Doses = append(stages[i].Doses, d)
		}
		doseRows.Close()
	}

	return stages, nil
}

// ListRegimens returns the stored regimens without their stage detail.
func (s *Storage) ListRegimens() ([]models.Regimen, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, kind, start, created_at FROM regimens ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query regimens: %w", err)
	}
	defer rows.Close()

	var regimens []models.Regimen
	for rows.Next() {
		var reg models.Regimen
		var kind, start, createdAt string
		if err := rows.Scan(&reg.ID, &reg.Name, &kind, &start, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan regimen: %w", err)
		}
		reg.Kind = models.RegimenKind(kind)
		reg.Start, _ = time.Parse(time.RFC3339, start)
		reg.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		regimens = append(regimens, reg)
	}

	return regimens, nil
}

// DeleteRegimenByName removes a regimen and, via cascade, its stages, doses
// and samples.
func (s *Storage) DeleteRegimenByName(name string) error {
	res, err := s.DB.Exec(`DELETE FROM regimens WHERE name = ? OR id = ?`, name, name)
	if err != nil {
		return fmt.Errorf("failed to delete regimen: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("regimen %q not found", name)
	}
	return nil
}

// RegimenExists reports whether a name or id resolves.
func (s *Storage) RegimenExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM regimens WHERE name = ? OR id = ?)",
		name, name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check regimen existence: %w", err)
	}
	return exists, nil
}
