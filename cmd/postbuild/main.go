package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/shipguard/internal/buildinfo"
	"github.com/dmitrijs2005/shipguard/internal/config"
	"github.com/dmitrijs2005/shipguard/internal/postbuild"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := postbuild.NewApp(ctx, cfg, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
