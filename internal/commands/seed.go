package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/internal/core/service"
	"github.com/freelancedesk/billable/internal/infrastructure/db/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with sample data and exit",
	Long: `Seed inserts sample clients, users, projects, time entries and invoices.
It does nothing when any user already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		store, err := sqlite.Open(cmd.Context(), cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		return seed(cmd.Context(), store, log)
	},
}

// seed logs its own outcome.
func seed(ctx context.Context, store ports.Store, log zerolog.Logger) error {
	_, err := service.NewSeeder(store, service.SeederConfig{}, log).Seed(ctx)
	return err
}
