package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/frahmantamala/hr-management/internal/seed"
	"github.com/frahmantamala/hr-management/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the FastHR demo organisation for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, reportDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer reportDB.Close()

		ctx := context.Background()
		seeder := seed.NewSeeder(db, cfg.Security.BCryptCost, logger.LoggerWrapper())

		if clearData {
			if err := seeder.Clear(ctx); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Existing data cleared")
		}

		res, err := seeder.Run(ctx)
		if err != nil {
			log.Fatalf("failed to seed: %+v", err)
		}

		fmt.Printf("Seeded %d departments, %d users, %d employees, %d leaves, %d expenses\n",
			res.Departments, res.Users, res.Employees, res.Leaves, res.Expenses)
		fmt.Println("Test credentials:")
		fmt.Printf("  Admin: %s / %s\n", seed.AdminEmail, seed.AdminPassword)
		fmt.Printf("  User:  ahmet.yilmaz@fasthr.com / %s\n", seed.DefaultPassword)
	},
}
