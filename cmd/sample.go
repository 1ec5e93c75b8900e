package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/storage"
	"github.com/dmarinho0/androsim/internal/utils"
)

var (
	sampleRegimen string
	sampleDate    string
	sampleValue   float64
	sampleUnit    string
)

var addSampleCmd = &cobra.Command{
	Use:   "add-sample",
	Short: "Attach an observed lab value to a regimen",
	RunE: func(cmd *cobra.Command, args []string) error {
		takenAt, err := time.Parse("2006-01-02", sampleDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", sampleDate)
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		if err := st.AddLabSample(sampleRegimen, takenAt, sampleValue, sampleUnit); err != nil {
			return err
		}

		fmt.Println("✅ Lab sample recorded")
		return nil
	},
}

var listSamplesCmd = &cobra.Command{
	Use:   "list-samples",
	Short: "List the lab samples of a regimen",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(sampleRegimen)
		if err != nil {
			return err
		}

		if reg.Simple == nil || len(reg.Simple.Samples) == 0 {
			fmt.Println("No lab samples recorded")
			return nil
		}
		for _, sample := range reg.Simple.Samples {
			fmt.Printf("%s: %.1f %s\n", utils.FormatDay(sample.TakenAt), sample.Value, sample.Unit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSampleCmd)
	addSampleCmd.Flags().StringVarP(&sampleRegimen, "regimen", "r", "", "Regimen name (required)")
	addSampleCmd.Flags().StringVarP(&sampleDate, "date", "d", "", "Sample date, YYYY-MM-DD (required)")
	addSampleCmd.Flags().Float64VarP(&sampleValue, "value", "v", 0, "Measured value (required)")
	addSampleCmd.Flags().StringVarP(&sampleUnit, "unit", "u", "ng/dL", "Measurement unit")
	addSampleCmd.MarkFlagRequired("regimen")
	addSampleCmd.MarkFlagRequired("date")
	addSampleCmd.MarkFlagRequired("value")

	rootCmd.AddCommand(listSamplesCmd)
	listSamplesCmd.Flags().StringVarP(&sampleRegimen, "regimen", "r", "", "Regimen name (required)")
	listSamplesCmd.MarkFlagRequired("regimen")
}
