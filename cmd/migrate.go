package cmd

import (
	"context"
	"log"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/datamodel"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
		Long: `Applies the goose SQL migrations under db/migrations for postgres.
For sqlite the schema is created from the gorm models instead.`,
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Database.Driver == internal.DriverSQLite {
		return autoMigrate(cfg.Database)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.Source)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	defer db.Close()
	goose.SetTableName("schema_migrations")

	command := "up"
	if migrateRollback {
		command = "down"
	}

	if err := goose.RunContext(ctx, command, db, migrateDir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	return nil
}

func autoMigrate(cfg internal.DatabaseConfig) error {
	if migrateRollback {
		log.Fatal("rollback is only supported for postgres migrations")
	}

	db, reportDB, err := initDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer reportDB.Close()

	if err := db.AutoMigrate(datamodel.Models()...); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Println("sqlite schema is up to date")
	return nil
}
