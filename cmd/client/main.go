package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/artspace/internal/buildinfo"
	"github.com/dmitrijs2005/artspace/internal/client/cli"
	"github.com/dmitrijs2005/artspace/internal/client/config"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	// The REPL blocks on stdin, so an interrupt ends the session here and
	// exits instead of waiting for the next line.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		if err := app.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(ctx, "shutdown failed", "error", err)
		}
		os.Exit(130)
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
