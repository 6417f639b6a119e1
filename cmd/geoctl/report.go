package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/report"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a permit pipeline status summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		pool, repo, _, err := openRepository(logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		permits, err := repo.ListPermits(cmd.Context())
		if err != nil {
			return fmt.Errorf("list permits: %w", err)
		}

		summary := report.Summarize(permits)

		var out io.Writer = cmd.OutOrStdout()
		if reportOut != "" {
			file, errCreate := os.Create(reportOut)
			if errCreate != nil {
				return fmt.Errorf("create report file: %w", errCreate)
			}
			defer file.Close()
			out = file
		}

		switch reportFormat {
		case "json":
			err = report.WriteJSON(out, summary)
		case "html":
			err = report.WriteHTML(out, summary)
		default:
			return fmt.Errorf("unsupported format %q (want json or html)", reportFormat)
		}
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "json", "output format: json or html")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
