package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/geocoding"
)

var (
	entryLat    float64
	entryLon    float64
	entryParcel string
)

var addEntryCmd = &cobra.Command{
	Use:   "add-entry <address>",
	Short: "Append a manually geocoded address to the lookup table",
	Long: "Appends one manually geocoded address to the lookup table. " +
		"Coordinates outside the configured region's bounding box are rejected. " +
		"Run between daemon batch runs, not during one.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		raw := strings.Join(args, " ")

		pool, repo, cfg, err := openRepository(logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		admin := geocoding.NewAdmin(repo, cfg.Region, logger)

		err = admin.AddManualEntry(cmd.Context(), raw, entryLat, entryLon, entryParcel)
		if errors.Is(err, geocoding.ErrOutOfBounds) {
			return fmt.Errorf("coordinates (%.5f, %.5f) are outside the %s bounds", entryLat, entryLon, cfg.Region)
		}
		if err != nil {
			return fmt.Errorf("add manual entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %q to the lookup table\n", raw)
		return nil
	},
}

func init() {
	addEntryCmd.Flags().Float64Var(&entryLat, "lat", 0, "latitude of the address")
	addEntryCmd.Flags().Float64Var(&entryLon, "lon", 0, "longitude of the address")
	addEntryCmd.Flags().StringVar(&entryParcel, "parcel", "", "optional assessor parcel number")
	_ = addEntryCmd.MarkFlagRequired("lat")
	_ = addEntryCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(addEntryCmd)
}
