package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/loader"
)

var importLookupCmd = &cobra.Command{
	Use:   "import-lookup <file.csv>",
	Short: "Bulk-load a lookup table CSV export into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open lookup CSV: %w", err)
		}
		defer file.Close()

		pool, _, _, err := openRepository(logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		copied, err := loader.ImportLookupCSV(cmd.Context(), pool, file, logger)
		if err != nil {
			return fmt.Errorf("import lookup CSV: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d lookup rows\n", copied)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importLookupCmd)
}
