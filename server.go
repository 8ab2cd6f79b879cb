package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradeboard/api"
	"github.com/ukane-philemon/gradeboard/internal/config"
	"github.com/ukane-philemon/gradeboard/internal/db/memdb"
	"github.com/ukane-philemon/gradeboard/internal/db/mongodb"
	"github.com/ukane-philemon/gradeboard/internal/logger"
	"github.com/ukane-philemon/gradeboard/internal/pagestate"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gradeboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var isDevMode bool
	var configDir string
	flag.BoolVar(&isDevMode, "dev", false, "Run server in development mode")
	flag.StringVar(&configDir, "config", "config", "Directory holding the optional .env.<env> file")
	flag.Parse()

	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("config.Load error: %w", err)
	}

	lg, err := logger.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger.New error: %w", err)
	}

	dbName := cfg.DBName
	if isDevMode {
		dbName = "dev_" + dbName
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db api.Database
	var backend pagestate.Backend
	if cfg.DBURL != "" {
		mdb, err := mongodb.New(ctx, dbName, cfg.DBURL, lg)
		if err != nil {
			return fmt.Errorf("mongodb.New error: %w", err)
		}
		db, backend = mdb, mdb
	} else {
		fileBackend, err := pagestate.NewFileBackend(cfg.StateDir)
		if err != nil {
			return fmt.Errorf("pagestate.NewFileBackend error: %w", err)
		}
		db, backend = memdb.New(nil), fileBackend
		level.Info(lg).Log("msg", "using in-memory roster", "stateDir", cfg.StateDir)
	}
	defer shutdownDB(lg, db)

	if cfg.Seed {
		n, err := db.SeedStudents(student.Seed())
		if err != nil {
			return fmt.Errorf("db.SeedStudents error: %w", err)
		}
		level.Info(lg).Log("msg", "roster seeded", "records", n)
	}

	state := pagestate.New(ctx, backend, lg)
	state.OnChange(func(st pagestate.State) {
		level.Debug(lg).Log("msg", "page state changed", "pages", len(st))
	})

	srv, err := api.NewServer(db, state, lg, api.Config{Latency: cfg.Latency, RateLimit: cfg.RateLimit})
	if err != nil {
		return fmt.Errorf("api.NewServer error: %w", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Ensure graceful shutdown by capturing SIGINT and SIGTERM signals.
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdownChan

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			level.Error(lg).Log("msg", "httpServer.Shutdown error", "err", err)
		}
	}()

	level.Info(lg).Log("msg", "gradeboard has started successfully", "addr", "http://localhost:"+cfg.Port, "env", cfg.Env, "db", dbName)

	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe error: %w", err)
	}

	level.Info(lg).Log("msg", "gradeboard shutdown successfully")
	return nil
}

func shutdownDB(lg log.Logger, db api.Database) {
	dbShutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Shutdown(dbShutdownCtx); err != nil {
		level.Error(lg).Log("msg", "db.Shutdown error", "err", err)
	}
}
