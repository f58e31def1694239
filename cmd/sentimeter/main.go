package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sentimeter/internal/buildinfo"
	"github.com/dmitrijs2005/sentimeter/internal/client/cli"
	"github.com/dmitrijs2005/sentimeter/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		stop()
		log.Fatalf("%v", err)
		return
	}

	code := app.Run(ctx)
	stop()
	os.Exit(code)

}
