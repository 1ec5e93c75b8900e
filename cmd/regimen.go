package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/storage"
	"github.com/dmarinho0/androsim/internal/utils"
)

var createRegimenCmd = &cobra.Command{
	Use:   "create-regimen [file]",
	Short: "Create a new regimen from a TOML file",
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

		if err := st.CreateRegimen(file); err != nil {
			return fmt.Errorf("failed to create regimen: %w", err)
		}

		fmt.Println("✅ Regimen created successfully")
		return nil
	},
}

var listRegimensCmd = &cobra.Command{
	Use:   "list-regimens",
	Short: "List all regimens",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		regimens, err := st.ListRegimens()
		if err != nil {
			return err
		}

		for _, r := range regimens {
			fmt.Printf("%s - %s (%s, starts %s)\n", r.ID, r.Name, r.Kind, utils.FormatDay(r.Start))
		}
		return nil
	},
}

var deleteRegimenCmd = &cobra.Command{
	Use:   "delete-regimen [name]",
	Short: "Delete a regimen and its samples",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}

		if err := st.DeleteRegimenByName(args[0]); err != nil {
			return err
		}

		fmt.Printf("✅ Regimen '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createRegimenCmd)
	rootCmd.AddCommand(listRegimensCmd)
	rootCmd.AddCommand(deleteRegimenCmd)
}
