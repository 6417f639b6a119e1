package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/loader"
)

var (
	fetchDataset string
	fetchLimit   int
	fetchWhere   string
)

var fetchPermitsCmd = &cobra.Command{
	Use:   "fetch-permits",
	Short: "Fetch permit records from the open-data portal into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		pool, repo, cfg, err := openRepository(logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		client := loader.NewSocrataClient(cfg.Socrata.Domain, cfg.Socrata.AppToken, logger)

		records, err := client.FetchPermits(cmd.Context(), fetchDataset, fetchLimit, fetchWhere)
		if err != nil {
			return fmt.Errorf("fetch permits: %w", err)
		}

		inserted, err := repo.InsertPermits(cmd.Context(), records)
		if err != nil {
			return fmt.Errorf("store permits: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d records, inserted %d new permits\n", len(records), inserted)
		return nil
	},
}

func init() {
	fetchPermitsCmd.Flags().StringVar(&fetchDataset, "dataset", "building_permits", "dataset name to fetch")
	fetchPermitsCmd.Flags().IntVar(&fetchLimit, "limit", 10000, "maximum records to fetch")
	fetchPermitsCmd.Flags().StringVar(&fetchWhere, "where", "", "optional SoQL filter clause")
	rootCmd.AddCommand(fetchPermitsCmd)
}
