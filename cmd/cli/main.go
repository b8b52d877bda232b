package main

import (
	"context"
	"log"

	"github.com/portalesuite/portale-client/internal/cli"
	"github.com/portalesuite/portale-client/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
