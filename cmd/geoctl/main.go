// geoctl is the administrative companion to the geocoder daemon: it loads
// the lookup table, ingests permit records from the open-data portal,
// resolves single addresses, appends manual lookup entries, and exports
// status reports. Mutating commands are meant to run out of band, between
// the daemon's batch runs, never interleaved with one.
package main

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/civicdata/permit-geocoder/internal/config"
	"github.com/civicdata/permit-geocoder/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:          "geoctl",
	Short:        "Administrative tool for the permit geocoder",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr so command output on stdout
// stays machine-readable.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// openRepository connects to the configured database and wraps it in a
// repository. The caller owns closing the pool.
func openRepository(logger *slog.Logger) (*pgxpool.Pool, *repository.Repository, *config.Config, error) {
	cfg := config.MustLoad()

	pool, err := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	return pool, repository.NewRepository(pool, logger), cfg, nil
}
