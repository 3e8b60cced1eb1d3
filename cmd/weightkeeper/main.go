package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/weightkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/weightkeeper/internal/cli"
	"github.com/dmitrijs2005/weightkeeper/internal/config"
	"github.com/dmitrijs2005/weightkeeper/internal/cryptox"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/weightkeeper/internal/services"
	"github.com/dmitrijs2005/weightkeeper/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	storage.SetLogger(log)

	db, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	from, err := storage.Migrate(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if from > 0 && from < storage.SchemaVersion {
		log.Warn(ctx, "schema rebuilt, previous data discarded", "from", from, "to", storage.SchemaVersion)
	}

	m := repomanager.NewSQLiteRepositoryManager()
	hasher := cryptox.NewBcryptHasher(cfg.BcryptCost)

	app := cli.NewApp(
		services.NewAccountStore(db, m, hasher, log),
		services.NewSessionStore(db, m, log),
		services.NewTrackingStore(db, m, log),
		log,
		os.Stdin,
		os.Stdout,
	)
	app.Run(ctx)
	return nil
}
