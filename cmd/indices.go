package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/kinetics"
	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/storage"
)

var indicesRegimen string

var indicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "Show the anabolic/androgenic effect indices of a regimen",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(indicesRegimen)
		if err != nil {
			return err
		}

		printBoxedHeader("EFFECT INDICES")
		printMetric("Regimen", reg.Name)

		idx := kinetics.RegimenIndices(reg, st)
		printMetric("Anabolic index", fmt.Sprintf("%.1f", idx.Anabolic))
		printMetric("Androgenic index", fmt.Sprintf("%.1f", idx.Androgenic))

		if reg.Kind == models.RegimenAdvanced && reg.Advanced != nil {
			fmt.Println()
			for i, stage := range reg.Advanced.Stages {
				stageIdx := kinetics.StageIndices(stage, st)
				printMetric(
					fmt.Sprintf("Stage %d (weeks %d-%d)", i+1, stage.StartWeek, stage.StartWeek+stage.DurationWeeks),
					fmt.Sprintf("anabolic %.1f, androgenic %.1f", stageIdx.Anabolic, stageIdx.Androgenic))
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(indicesCmd)
	indicesCmd.Flags().StringVarP(&indicesRegimen, "regimen", "r", "", "Regimen name (required)")
	indicesCmd.MarkFlagRequired("regimen")
}
