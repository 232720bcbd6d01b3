package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/instaguard/instaguard/internal/buildinfo"
	"github.com/instaguard/instaguard/internal/client/cli"
	"github.com/instaguard/instaguard/internal/client/config"
	"github.com/instaguard/instaguard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, false)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
