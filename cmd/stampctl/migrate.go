package main

import (
	"context"
	"fmt"

	"stampshop/config"
	logs "stampshop/internal/infra/log"
	"stampshop/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the order tables",
		Long: `Create or update the order tables in the configured database.

The database is read from the same config.yaml and environment variables the
storefront uses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			app := fx.New(
				fx.NopLogger,
				fx.Provide(
					config.New,
					logs.New,
					postgres.New,
				),
				fx.Populate(&db),
			)

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "failed to connect to database")
			}
			defer func() {
				_ = app.Stop(context.Background())
			}()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Order tables are up to date")

			return nil
		},
	}
}
