// Package commands wires configuration, storage and the HTTP server behind
// the billable command line.
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freelancedesk/billable/internal/infrastructure/config"
	"github.com/freelancedesk/billable/pkg/logger"
)

const serviceName = "billable"

var rootCmd = &cobra.Command{
	Use:   "billable",
	Short: "Billable - time tracking and invoicing for freelancers",
	Long: `Billable serves a small web application where freelancers log hours
against client projects, and clients follow the work and invoices that
concern them. Running it without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// bootstrap loads .env and the environment, then initialises the logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})
	return cfg, log, nil
}
