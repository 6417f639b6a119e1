package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/address"
	"github.com/civicdata/permit-geocoder/internal/geocoding"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <address>",
	Short: "Resolve one address against the lookup table",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		raw := strings.Join(args, " ")

		pool, repo, _, err := openRepository(logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		resolver := geocoding.NewResolver(repo, logger)

		result, err := resolver.Resolve(cmd.Context(), raw)
		if errors.Is(err, geocoding.ErrNoMatch) {
			fmt.Fprintf(cmd.OutOrStdout(), "No match for %q (normalized: %q)\n", raw, address.Normalize(raw))
			return nil
		}
		if err != nil {
			return fmt.Errorf("resolve address: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %.6f, %.6f (matched %q, parcel %q)\n",
			raw, result.Latitude, result.Longitude, result.MatchedAddress, result.ParcelID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
