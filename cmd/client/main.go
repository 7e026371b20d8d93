package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/gownshop/internal/buildinfo"
	"github.com/dmitrijs2005/gownshop/internal/client/cli"
	"github.com/dmitrijs2005/gownshop/internal/client/config"
	"github.com/dmitrijs2005/gownshop/internal/logging"
)

const appname = "gownshop"

func main() {

	displayAppname(appname)
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.APIBaseURL == "" {
		logger.Warn(ctx, "API base URL is not set; use -a, API_BASE_URL or the JSON config")
	}
	logger.Debug(ctx, "starting", "api", cfg.APIBaseURL, "storage", cfg.StoragePath, "locale", cfg.Locale)
	app.Run(ctx)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
