// Command pathwayd is a demo pathway host: it serves static responses
// routed by a pathway Router built from a YAML configuration file, with
// logging, metrics and hot reload of the route table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-pathway/pathway/config"
	"github.com/go-pathway/pathway/observability"
)

func main() {
	configPath := flag.String("config", "pathwayd.yaml", "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "pathwayd: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	observability.SetGlobalLogger(logger)

	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Route-table changes are hot-reloaded by swapping a freshly built
	// router; listen address, logging and middleware changes need a
	// restart.
	watcher, err := config.NewWatcher(configPath, app.swap, config.WithLogger(logger))
	if err != nil {
		logger.Warn("config watching disabled", observability.Error(err))
	} else {
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = watcher.Stop() }()
	}

	return app.serve(ctx)
}
