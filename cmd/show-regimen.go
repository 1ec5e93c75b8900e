package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/kinetics"
	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/storage"
	"github.com/dmarinho0/androsim/internal/utils"
)

var showRegimenName string

var showRegimenCmd = &cobra.Command{
	Use:   "show-regimen",
	Short: "Display a regimen with its stages and doses",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(showRegimenName)
		if err != nil {
			return fmt.Errorf("failed to load regimen: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(reg.Name)))
		fmt.Printf("%s: %s\n", cyan("Kind"), reg.Kind)
		fmt.Printf("%s: %s\n", cyan("Start"), utils.FormatDay(reg.Start))
		fmt.Printf("%s: %s\n", cyan("End"), utils.FormatDay(reg.End()))
		if reg.Notes != "" {
			fmt.Printf("%s: %s\n", cyan("Notes"), reg.Notes)
		}
		fmt.Println(strings.Repeat("=", 60))

		switch reg.Kind {
		case models.RegimenSimple:
			printDose(st, reg.Simple.Dose, "  ")
			if len(reg.Simple.Samples) > 0 {
				fmt.Printf("\n%s:\n", yellow("Lab samples"))
				for _, sample := range reg.Simple.Samples {
					fmt.Printf("  %s: %.1f %s\n", utils.FormatDay(sample.TakenAt), sample.Value, sample.Unit)
				}
			}
		case models.RegimenAdvanced:
			for i, stage := range reg.Advanced.Stages {
				start, end := stage.Window(reg.Start)
				fmt.Printf("\n%s %d: weeks %d-%d (%s → %s)\n",
					yellow("Stage"), i+1,
					stage.StartWeek, stage.StartWeek+stage.DurationWeeks,
					utils.FormatDay(start), utils.FormatDay(end))
				fmt.Println(strings.Repeat("-", 60))
				for _, d := range stage.Doses {
					printDose(st, d, "  ")
				}
			}
		}
		fmt.Println()

		return nil
	},
}

func printDose(st *storage.Storage, d models.SubDose, indent string) {
	name := d.Target.Ref
	switch d.Target.Kind {
	case models.TargetCompound:
		if comp, ok := st.Compound(d.Target.Ref); ok {
			name = comp.Name
		}
	case models.TargetBlend:
		if blend, ok := st.Blend(d.Target.Ref); ok {
			name = blend.Name
		}
	}

	if d.FrequencyDays > 0 {
		fmt.Printf("%s%s: %.0f mg every %.3g days via %s (%.0f mg/week)\n",
			indent, name, d.DoseMg, d.FrequencyDays, d.Route,
			kinetics.WeeklyDose(d.DoseMg, d.FrequencyDays))
	} else {
		fmt.Printf("%s%s: single %.0f mg administration via %s\n", indent, name, d.DoseMg, d.Route)
	}
}

func init() {
	rootCmd.AddCommand(showRegimenCmd)
	showRegimenCmd.Flags().StringVarP(&showRegimenName, "regimen", "r", "", "Name of the regimen (required)")
	showRegimenCmd.MarkFlagRequired("regimen")
}
