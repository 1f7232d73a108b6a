package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/shipguard/internal/buildinfo"
	"github.com/dmitrijs2005/shipguard/internal/config"
	"github.com/dmitrijs2005/shipguard/internal/sessionctl"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := sessionctl.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
