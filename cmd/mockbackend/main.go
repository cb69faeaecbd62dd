package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/carpoolea/internal/buildinfo"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := mockbackend.NewApp(cfg).Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
