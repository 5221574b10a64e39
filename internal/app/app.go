// Package app wires the engine together and owns its lifecycle.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/windshadowstudio/engine/internal/controllers/restserver"
	"github.com/windshadowstudio/engine/internal/job"
	"github.com/windshadowstudio/engine/internal/log"
	"github.com/windshadowstudio/engine/pkg/config"
)

// App represents the main application
type App struct {
	listenAddr string
	runtimeDir string
	logger     *zap.SugaredLogger
}

// New creates a new application instance
func New(listenAddr, runtimeDir string, logger *zap.SugaredLogger) *App {
	return &App{
		listenAddr: listenAddr,
		runtimeDir: runtimeDir,
		logger:     logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := os.MkdirAll(a.runtimeDir, 0o755); err != nil {
		return fmt.Errorf("creating runtime directory: %w", err)
	}

	// Run history is best effort: the engine still works without it.
	var runs config.RunStore
	store, err := config.NewSQLiteRunStore(filepath.Join(a.runtimeDir, "runs.db"))
	if err != nil {
		log.Warnf("run history disabled: %v", err)
	} else {
		runs = store
		defer store.Close()
	}

	jobs := job.NewManager(a.logger, runs)

	ctrl, err := restserver.NewController(ctx, &wg, a.listenAddr, jobs, a.logger)
	if err != nil {
		return err
	}

	// The desktop shell discovers the engine through the port file and
	// the ENGINE_PORT line on stdout.
	if err := a.writePortFile(ctrl.Port()); err != nil {
		return err
	}
	fmt.Printf("ENGINE_PORT=%d\n", ctrl.Port())

	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

func (a *App) writePortFile(port int) error {
	data, _ := json.Marshal(map[string]int{"port": port})
	path := filepath.Join(a.runtimeDir, "port.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing port file: %w", err)
	}
	return nil
}
