package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/instaguard/instaguard/internal/buildinfo"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server"
	"github.com/instaguard/instaguard/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, true)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
