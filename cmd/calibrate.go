package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/config"
	"github.com/dmarinho0/androsim/internal/kinetics"
	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/storage"
)

var calibrateRegimen string

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit a compound's kinetic constants to the regimen's lab samples",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(calibrateRegimen)
		if err != nil {
			return err
		}

		if reg.Kind != models.RegimenSimple || reg.Simple == nil {
			return fmt.Errorf("calibration only applies to simple regimens")
		}
		dose := reg.Simple.Dose
		if dose.Target.Kind != models.TargetCompound {
			return fmt.Errorf("calibration only applies to single-compound regimens, not blends")
		}

		comp, ok := st.Compound(dose.Target.Ref)
		if !ok {
			return fmt.Errorf("compound %q not found", dose.Target.Ref)
		}

		samples := reg.Simple.Samples
		if len(samples) == 0 {
			fmt.Println("No lab samples recorded; add some with add-sample first")
			return nil
		}

		// Administrations from regimen start up to the latest sample: later
		// doses cannot influence any measurement.
		last := samples[0].TakenAt
		for _, s := range samples[1:] {
			if s.TakenAt.After(last) {
				last = s.TakenAt
			}
		}
		adminTimes, truncated := kinetics.ScheduleDates(reg.Start, dose.FrequencyDays, reg.Start, last)
		if truncated {
			logrus.WithField("regimen", reg.Name).
				Warn("administration schedule truncated at the generation cap; fit may be degraded")
		}

		opts := kinetics.Options{
			BodyWeightKg:      cfg.Simulation.BodyWeightKg,
			CalibrationFactor: cfg.Simulation.CalibrationFactor,
			TwoCompartment:    cfg.Simulation.TwoCompartment,
		}

		result := kinetics.Calibrate(samples, adminTimes, comp, dose.DoseMg, dose.Route, opts)

		printBoxedHeader("CALIBRATION")
		printMetric("Compound", comp.Name)
		printMetric("Samples", len(samples))

		if result.Status != kinetics.CalibrationOK {
			fmt.Printf("\n  Not enough data to fit (%s); at least two samples are needed\n", result.Status)
			return nil
		}

		printMetric("Fitted ke", fmt.Sprintf("%.4f /day", result.Ke))
		printMetric("Fitted ka", fmt.Sprintf("%.4f /day", result.Ka))
		printMetric("Half-life", fmt.Sprintf("%.2f days (%+.1f%% vs reference)", result.HalfLifeDays, result.HalfLifeChangePct))
		printMetric("RMSE", fmt.Sprintf("%.2f", result.RMSE))
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.Flags().StringVarP(&calibrateRegimen, "regimen", "r", "", "Regimen name (required)")
	calibrateCmd.MarkFlagRequired("regimen")
}
