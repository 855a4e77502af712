// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/denote/internal/editor"
	"github.com/starford/denote/internal/mcpserver"
	"github.com/starford/denote/internal/noteservice"
	"github.com/starford/denote/internal/storage"
)

// App is the wired application shared by the CLI commands.
type App struct {
	Config   *Config
	Logger   *slog.Logger
	Service  *noteservice.Service
	Launcher editor.Launcher

	version string
}

// New builds the application from the given options. The notes directory is
// created when missing.
func New(opts ...Option) (*App, error) {
	app := &application{logWriter: os.Stderr, version: "dev"}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, errors.New("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Structured JSON logger on stderr; stdout carries command output.
	logger := slog.New(slog.NewJSONHandler(app.logWriter, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	dir, err := cfg.Notes.Dir()
	if err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded",
		slog.String("notes_path", dir),
		slog.String("extension", cfg.Notes.Extension),
		slog.Bool("front_matter", cfg.Notes.FrontMatter),
		slog.String("log_level", cfg.App.LogLevel.String()))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create notes dir: %w", err)
	}

	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	svc := noteservice.NewService(store, noteservice.Settings{
		DefaultExtension: cfg.Notes.Extension,
		FrontMatter:      cfg.Notes.FrontMatter,
		Now:              app.now,
	}, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
		Launcher: editor.Launcher{
			TextEditor: cfg.Editor.TextEditor,
			PDFViewer:  cfg.Editor.PDFViewer,
		},
		version: app.version,
	}, nil
}

// ServeMCP serves the note tools over stdin/stdout until the client
// disconnects, ctx is cancelled or the process is signalled.
func (a *App) ServeMCP(ctx context.Context) error {
	return a.serveMCP(ctx, os.Stdin, os.Stdout)
}

func (a *App) serveMCP(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := mcpserver.New(a.Service, a.version)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		a.Logger.Info("MCP server starting", slog.String("notes_path", a.Service.Root()))
		return srv.Serve(gCtx, in, out, a.Logger)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			a.Logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Logger.Error("MCP server error", slog.String("error", err.Error()))
		return err
	}

	a.Logger.Info("MCP server stopped")
	return nil
}
