package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/visitor-log/internal/config"
	"github.com/deppfellow/visitor-log/internal/database"
	"github.com/deppfellow/visitor-log/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)

			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}
