package main

import (
	"flag"

	"github.com/rmohit9/Healthcare-Portal/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("c", ".env", "path to the .env config file")
	flag.Parse()

	// Initialize application with all dependencies
	app, err := bootstrap.New(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
}
