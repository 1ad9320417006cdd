// Command migrate applies or rolls back the database schema.
//
//	migrate [-c .env] up
//	migrate [-c .env] down [steps]
package main

import (
	"flag"
	"strconv"

	"github.com/rmohit9/Healthcare-Portal/cmd/bootstrap"
	"github.com/rmohit9/Healthcare-Portal/config"
	"github.com/rmohit9/Healthcare-Portal/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("c", ".env", "path to the .env config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.Log)

	url := database.MigrationURL(cfg.DB)

	switch flag.Arg(0) {
	case "up", "":
		err = database.MigrateUp(url)
	case "down":
		steps := 1
		if raw := flag.Arg(1); raw != "" {
			steps, err = strconv.Atoi(raw)
			if err != nil || steps < 1 {
				logrus.Fatalf("Invalid step count %q", raw)
			}
		}
		err = database.MigrateDown(url, steps)
	default:
		logrus.Fatalf("Unknown command %q, expected up or down", flag.Arg(0))
	}

	if err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}
	logrus.Info("Migration finished")
}
