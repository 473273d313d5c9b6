// Command seed creates the default admin account and course catalog.
// It is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/yigit/studentreg/internal/bootstrap"
	"github.com/yigit/studentreg/internal/pkg/logger"
	"github.com/yigit/studentreg/internal/seed"
)

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	skipCatalog := flag.Bool("admin-only", false, "only ensure the admin account")
	flag.Parse()

	bootstrap.DefaultConfigPath = *configPath
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := bootstrap.NewSeeder(database, lgr)
	if *skipCatalog {
		_, err = seeder.EnsureAdmin(ctx, bootstrap.AdminAccount(cfg))
	} else {
		err = seeder.Run(ctx, bootstrap.AdminAccount(cfg))
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Seeding finished with errors")
		database.Close()
		os.Exit(1)
	}

	lgr.Info().Int("catalogProfessors", len(seed.DefaultCatalog)).Msg("Seeding complete")
}
