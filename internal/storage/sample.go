package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarinho0/androsim/internal/models"
)

// AddLabSample attaches an observed measurement to a regimen.
func (s *Storage) AddLabSample(regimenName string, takenAt time.Time, value float64, unit string) error {
	reg, err := s.GetRegimenByName(regimenName)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(
		`INSERT INTO lab_samples (id, regimen_id, taken_at, value, unit)
         VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), reg.ID, takenAt.UTC().Format(time.RFC3339), value, unit,
	)
	if err != nil {
		return fmt.Errorf("failed to add lab sample: %w", err)
	}
	return nil
}

func (s *Storage) loadSamples(regimenID string) ([]models.LabSample, error) {
	rows, err := s.DB.Query(
		`SELECT id, taken_at, value, unit
         FROM lab_samples WHERE regimen_id = ? ORDER BY taken_at`,
		regimenID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lab samples: %w", err)
	}
	defer rows.Close()

	var samples []models.LabSample
	for rows.Next() {
		var sample models.LabSample
		var takenAt string
		if err := rows.Scan(&sample.ID, &takenAt, &sample.Value, &sample.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan lab sample: %w", err)
		}
		sample.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		samples = append(samples, sample)
	}

	return samples, nil
}
