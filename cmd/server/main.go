// Package main implements the entry point for the FinStart API server, which
// serves a financial-literacy curriculum, tracks learner progress, runs
// financial calculators and generates lessons through an LLM provider.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/finstart-api/internal/config"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/platform/otel"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "finstart-api: %v\n", err)
		os.Exit(1)
	}
}

// options are the command line flags of the server binary.
type options struct {
	configPath string
	migrate    string
	seedPath   string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("finstart-api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to a config file (default: ./config.yaml if present)")
	fs.StringVar(&opts.migrate, "migrate", "", "run database migrations and exit: up, down or status")
	fs.StringVar(&opts.seedPath, "seed", "", "upsert the lessons of a YAML seed file and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && !isMigrationCommand(opts.migrate) {
		return options{}, fmt.Errorf("unknown migrate command %q (want up, down or status)", opts.migrate)
	}
	if opts.migrate != "" && opts.seedPath != "" {
		return options{}, errors.New("-migrate and -seed cannot be combined")
	}
	return opts, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// run loads configuration, connects storage and then either runs a one-shot
// maintenance command or serves HTTP until interrupted.
func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("llm_provider", cfg.LLM.Provider))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	switch {
	case opts.migrate != "":
		provider, err := newMigrationProvider(db, cfg.Database.Driver)
		if err != nil {
			return err
		}
		return runMigrations(ctx, provider, opts.migrate, log)

	case opts.seedPath != "":
		lessons, err := loadSeedFile(opts.seedPath)
		if err != nil {
			return err
		}
		st, err := newStores(db, cfg.Database.Driver, log)
		if err != nil {
			return err
		}
		return seedLessons(ctx, db, st.lessons, lessons, log)
	}

	shutdownTracing, err := otel.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
