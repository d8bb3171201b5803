package cli

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"hanzi-quiz-service/internal/config"
	"hanzi-quiz-service/internal/infra/memory"
	pgsource "hanzi-quiz-service/internal/infra/postgres"
)

// NewSeedCmd pushes the canonical question set into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the built-in question set into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}

			sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
			db := bun.NewDB(sqldb, pgdialect.New())
			defer db.Close()

			drafts := memory.DefaultSeed()
			if err := pgsource.InsertDrafts(cmd.Context(), db, drafts); err != nil {
				return err
			}
			log.Printf("seeded %d questions", len(drafts))
			return nil
		},
	}
}
