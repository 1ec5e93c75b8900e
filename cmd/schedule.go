package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/kinetics"
	"github.com/dmarinho0/androsim/internal/models"
	"github.com/dmarinho0/androsim/internal/storage"
	"github.com/dmarinho0/androsim/internal/utils"
)

var (
	scheduleRegimen string
	scheduleFrom    string
	scheduleTo      string
)

// administration pairs a dose date with what gets injected then.
type administration struct {
	at    time.Time
	label string
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List the administration dates of a regimen inside a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		reg, err := st.GetRegimenByName(scheduleRegimen)
		if err != nil {
			return err
		}

		from, to, err := resolveWindow(reg, scheduleFrom, scheduleTo)
		if err != nil {
			return err
		}

		admins, truncated := regimenAdministrations(st, reg, from, to)
		if truncated {
			logrus.WithField("regimen", reg.Name).
				Warn("schedule truncated at the generation cap; dates are incomplete")
		}

		if len(admins) == 0 {
			fmt.Println("No administrations in the window")
			return nil
		}
		for _, a := range admins {
			fmt.Printf("%s  %s\n", utils.FormatDay(a.at), a.label)
		}
		fmt.Printf("\n%d administrations between %s and %s\n",
			len(admins), utils.FormatDay(from), utils.FormatDay(to))
		return nil
	},
}

// resolveWindow parses the optional --from/--to flags, defaulting to the
// regimen's own span.
func resolveWindow(reg *models.Regimen, fromFlag, toFlag string) (time.Time, time.Time, error) {
	from, to := reg.Start, reg.End()
	if fromFlag != "" {
		t, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			return from, to, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", fromFlag)
		}
		from = t
	}
	if toFlag != "" {
		t, err := time.Parse("2006-01-02", toFlag)
		if err != nil {
			return from, to, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", toFlag)
		}
		to = t
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("--to is before --from")
	}
	return from, to, nil
}

// regimenAdministrations expands every dose of the regimen into dated
// administrations inside the window, sorted chronologically.
func regimenAdministrations(st *storage.Storage, reg *models.Regimen, from, to time.Time) ([]administration, bool) {
	var admins []administration
	var truncated bool

	appendDose := func(d models.SubDose, start, end time.Time) {
		if end.After(to) {
			end = to
		}
		dates, trunc := kinetics.ScheduleDates(start, d.FrequencyDays, from, end)
		if trunc {
			truncated = true
		}
		label := doseLabel(st, d)
		for _, t := range dates {
			admins = append(admins, administration{at: t, label: label})
		}
	}

	switch reg.Kind {
	case models.RegimenSimple:
		if reg.Simple != nil {
			appendDose(reg.Simple.Dose, reg.Start, to)
		}
	case models.RegimenAdvanced:
		if reg.Advanced != nil {
			for _, stage := range reg.Advanced.Stages {
				start, end := stage.Window(reg.Start)
				for _, d := range stage.Doses {
					appendDose(d, start, end.Add(-time.Nanosecond))
				}
			}
		}
	}

	sort.Slice(admins, func(i, j int) bool { return admins[i].at.Before(admins[j].at) })
	return admins, truncated
}

func doseLabel(st *storage.Storage, d models.SubDose) string {
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
	return fmt.Sprintf("%s %.0f mg (%s)", name, d.DoseMg, d.Route)
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringVarP(&scheduleRegimen, "regimen", "r", "", "Regimen name (required)")
	scheduleCmd.Flags().StringVar(&scheduleFrom, "from", "", "Window start, YYYY-MM-DD (default: regimen start)")
	scheduleCmd.Flags().StringVar(&scheduleTo, "to", "", "Window end, YYYY-MM-DD (default: regimen end)")
	scheduleCmd.MarkFlagRequired("regimen")
}
