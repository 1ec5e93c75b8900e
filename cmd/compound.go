package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/storage"
)

var listCompoundsCmd = &cobra.Command{
	Use:   "list-compounds",
	Short: "List the compound reference library",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		compounds, err := st.ListCompounds()
		if err != nil {
			return err
		}

		for _, c := range compounds {
			fmt.Printf("%s - %s (t½ %.2g days)\n", c.ID, c.Name, c.HalfLifeDays)
		}
		return nil
	},
}

var showCompoundCmd = &cobra.Command{
	Use:   "show-compound [id or name]",
	Short: "Display a compound's pharmacologic constants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		comp, err := st.GetCompound(args[0])
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()

		fmt.Printf("\n%s\n", green(comp.Name))
		fmt.Printf("%s: %s\n", cyan("ID"), comp.ID)
		fmt.Printf("%s: %s\n", cyan("Class"), comp.Class)
		if comp.Ester != "" {
			fmt.Printf("%s: %s\n", cyan("Ester"), comp.Ester)
		}
		fmt.Printf("%s: %.3g days\n", cyan("Half-life"), comp.HalfLifeDays)
		if info, ok := comp.Class.Info(); ok {
			fmt.Printf("%s: anabolic ×%.2f, androgenic ×%.2f\n", cyan("Potency"), info.Anabolic, info.Androgenic)
		}
		for route, kin := range comp.Routes {
			fmt.Printf("%s %s: F=%.2f, ka=%.3g/day\n", cyan("Route"), route, kin.Bioavailability, kin.AbsorptionRate)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCompoundsCmd)
	rootCmd.AddCommand(showCompoundCmd)
}
