package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/carpoolea/internal/buildinfo"
	"github.com/dmitrijs2005/carpoolea/internal/client/cli"
	"github.com/dmitrijs2005/carpoolea/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	app, err := cli.NewApp(ctx, cfg, os.Stdin, os.Stdout)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
