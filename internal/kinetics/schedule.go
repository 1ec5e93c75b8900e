// Package kinetics is the simulation core: dose scheduling, compartment
// concentration models, superposition across administrations, effect indices,
// and calibration against lab samples. Every function is a pure computation of
// its inputs; reference data comes in through the ReferenceTable lookup.
package kinetics

import (
	"math"
	"time"

	"github.com/dmarinho0/androsim/internal/utils"
)

// maxScheduleSteps caps dose-date generation. Exceeding it truncates the
// schedule instead of looping; the caller sees the truncation flag.
const maxScheduleSteps = 10000

// ScheduleDates generates the administration timestamps of a repeating dose
// inside [windowStart, windowEnd]. Timestamps are regimenStart + k·frequency
// for k ≥ 0; nothing before regimenStart is ever produced. A non-positive
// frequency means a single administration at regimenStart. The second return
// reports whether the schedule was truncated by the step cap.
func ScheduleDates(regimenStart time.Time, frequencyDays float64, windowStart, windowEnd time.Time) ([]time.Time, bool) {
	if windowEnd.Before(windowStart) {
		return nil, false
	}

	if frequencyDays <= 0 {
		if regimenStart.Before(windowStart) || regimenStart.After(windowEnd) {
			return nil, false
		}
		return []time.Time{regimenStart}, false
	}

	// Jump straight to the first candidate instead of stepping from k=0,
	// otherwise long-running regimens burn the whole step budget before the
	// window.
	k := 0
	if windowStart.After(regimenStart) {
		k = int(math.Floor(utils.DaysBetween(regimenStart, windowStart) / frequencyDays))
		if k < 0 {
			k = 0
		}
	}

	var dates []time.Time
	for step := 0; step < maxScheduleSteps; step++ {
		t := utils.AddDays(regimenStart, float64(k)*frequencyDays)
		if t.After(windowEnd) {
			return dates, false
		}
		if !t.Before(windowStart) {
			dates = append(dates, t)
		}
		k++
	}
	return dates, true
}
