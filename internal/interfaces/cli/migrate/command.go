// Package migrate implements the `wordnest migrate` commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"wordnest/internal/infrastructure/config"
	"wordnest/internal/infrastructure/database"
	"wordnest/internal/infrastructure/migration"
	"wordnest/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			manager := migration.NewManager(env)
			if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Info("migrations applied", "strategy", manager.GetStrategy().GetName())
			return nil
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath())
			golangMigrate, ok := strategy.(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("rollback requires the golang-migrate strategy")
			}
			if err := golangMigrate.MigrateDown(database.Get(), steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGooseStrategy(scriptsPath())
			goose, ok := strategy.(*migration.GooseStrategy)
			if !ok {
				return fmt.Errorf("status requires the goose strategy")
			}
			return goose.Status(database.Get())
		},
	}
}

func initEnv() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

func scriptsPath() string {
	path, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "./internal/infrastructure/migration/scripts"
	}
	return path
}
