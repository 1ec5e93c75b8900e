package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/storage"
)

var createBlendCmd = &cobra.Command{
	Use:   "create-blend [file]",
	Short: "Create a new blend from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := st.CreateBlend(file); err != nil {
			return fmt.Errorf("failed to create blend: %w", err)
		}

		fmt.Println("✅ Blend created successfully")
		return nil
	},
}

var listBlendsCmd = &cobra.Command{
	Use:   "list-blends",
	Short: "List all blends with their components",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		blends, err := st.ListBlends()
		if err != nil {
			return err
		}

		for _, b := range blends {
			fmt.Printf("%s - %s (%.0f mg/mL total)\n", b.ID, b.Name, b.TotalConcentration())
			for _, c := range b.Components {
				fmt.Printf("  • %s: %.0f mg/mL\n", c.CompoundID, c.ConcentrationMgML)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createBlendCmd)
	rootCmd.AddCommand(listBlendsCmd)
}
