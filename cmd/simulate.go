package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/config"
	"github.com/dmarinho0/androsim/internal/kinetics"
	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/storage"
	"github.com/dmarinho0/androsim/internal/utils"
)

var (
	simRegimen     string
	simFrom        string
	simTo          string
	simStepDays    float64
	simWeight      float64
	simCalibration float64
	simTwoComp     bool
	simTable       bool
)

const chartWidth = 60

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate the concentration curves of a regimen over a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(simRegimen)
		if err != nil {
			return err
		}

		from, to, err := resolveWindow(reg, simFrom, simTo)
		if err != nil {
			return err
		}

		opts := kinetics.Options{
			BodyWeightKg:      cfg.Simulation.BodyWeightKg,
			CalibrationFactor: cfg.Simulation.CalibrationFactor,
			TwoCompartment:    cfg.Simulation.TwoCompartment || simTwoComp,
		}
		if simWeight > 0 {
			opts.BodyWeightKg = simWeight
		}
		if simCalibration > 0 {
			opts.CalibrationFactor = simCalibration
		}
		step := cfg.Simulation.GridStepDays
		if simStepDays > 0 {
			step = simStepDays
		}

		layers, diag := kinetics.BuildLayers(reg, st, from, to, step, opts)
		if diag.TruncatedSchedule || diag.TruncatedGrid {
			logrus.WithField("regimen", reg.Name).
				Warn("simulation truncated at the generation cap; curves are incomplete")
		}
		for _, ref := range diag.MissingRefs {
			logrus.WithField("ref", ref).Warn("unresolved reference skipped")
		}

		printBoxedHeader("SIMULATION")
		fmt.Printf("  %s → %s, %.3g kg, calibration ×%.3g\n\n",
			utils.FormatDay(from), utils.FormatDay(to), opts.BodyWeightKg, opts.CalibrationFactor)

		if len(layers) == 0 {
			fmt.Println("  Nothing to simulate in this window")
			return nil
		}

		for i := range layers {
			printLayer(&layers[i])
			if simTable {
				for _, p := range layers[i].Points {
					fmt.Printf("    %s  %8.2f\n", p.Time.Format("2006-01-02 15:04"), p.Value)
				}
				fmt.Println()
			}
		}

		return nil
	},
}

// printLayer renders one series as a colored sparkline with its peak summary.
func printLayer(s *models.Series) {
	colored := sprintColored(s.Color)
	peak, ok := s.Peak()
	if !ok {
		return
	}

	fmt.Printf("  %s\n", colored(s.Label))
	fmt.Printf("  %s\n", colored(sparkline(s.Points, chartWidth, peak.Value)))
	if peak.Value > 0 {
		trough := troughAfterPeak(s.Points, peak)
		fmt.Printf("  peak %.1f on %s, trough %.1f\n\n", peak.Value, utils.FormatDay(peak.Time), trough)
	} else {
		fmt.Println()
	}
}

// troughAfterPeak is the lowest value from the peak onward, the pre-dose
// minimum a lab draw would see.
func troughAfterPeak(points []models.Point, peak models.Point) float64 {
	trough := peak.Value
	for _, p := range points {
		if p.Time.Before(peak.Time) {
			continue
		}
		if p.Value < trough {
			trough = p.Value
		}
	}
	return trough
}

// sparkline downsamples the series onto width buckets, keeping the maximum of
// each bucket so narrow peaks stay visible.
func sparkline(points []models.Point, width int, max float64) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) < width {
		width = len(points)
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		lo := i * len(points) / width
		hi := (i + 1) * len(points) / width
		bucket := 0.0
		for _, p := range points[lo:hi] {
			if p.Value > bucket {
				bucket = p.Value
			}
		}
		idx := 0
		if max > 0 {
			idx = int(bucket / max * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVarP(&simRegimen, "regimen", "r", "", "Regimen name (required)")
	simulateCmd.Flags().StringVar(&simFrom, "from", "", "Window start, YYYY-MM-DD (default: regimen start)")
	simulateCmd.Flags().StringVar(&simTo, "to", "", "Window end, YYYY-MM-DD (default: regimen end)")
	simulateCmd.Flags().Float64Var(&simStepDays, "step", 0, "Grid step in days (default: config)")
	simulateCmd.Flags().Float64VarP(&simWeight, "weight", "w", 0, "Body weight in kg (default: config)")
	simulateCmd.Flags().Float64Var(&simCalibration, "calibration", 0, "Calibration factor (default: config)")
	simulateCmd.Flags().BoolVar(&simTwoComp, "two-compartment", false, "Use the two-compartment model")
	simulateCmd.Flags().BoolVar(&simTable, "table", false, "Print the raw time/value table per layer")
	simulateCmd.MarkFlagRequired("regimen")
}
