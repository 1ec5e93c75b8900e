package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/dmarinho0/androsim/internal/storage"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database file androsim.db and seed the compound library",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("libsql", "file:./androsim.db?cache=shared&mode=rwc")
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := storage.InitializeDB(db); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		st := &storage.Storage{DB: db}
		if err := st.SeedReferenceCompounds(); err != nil {
			return fmt.Errorf("failed to seed compound library: %w", err)
		}

		fmt.Println("✅ Database initialized successfully as androsim.db")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
