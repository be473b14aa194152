package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tike/internal/ctxlog"
	"github.com/vk/tike/internal/store"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: the output writer for task listings, an isolated logger, and
// the open record store with its schema ensured.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	store  *store.Store
}

// New is the constructor for the main application. It builds the logger,
// opens the database at cfg.DBPath, and creates the task tables if they do
// not exist yet.
func New(ctx context.Context, outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "path", cfg.DBPath)

	a := &App{outW: outW, logger: logger, store: st}
	if err := a.ensureSchema(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("preparing schema: %w", err)
	}
	return a, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.store.Close()
}
