package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/denote/internal"
	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/renamer"
	pkgconfig "github.com/starford/denote/pkg/config"
)

var version = "dev"

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitNotDenote = 2
	exitCollision = 3
	exitRenameIO  = 4
)

func configPath(cmd *cli.Command) string {
	if p := cmd.String("config"); p != "" {
		return p
	}
	return internal.DefaultConfigFile()
}

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(configPath(cmd), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func loadApp(cmd *cli.Command) (*internal.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	app, err := internal.New(internal.WithConfig(cfg), internal.WithVersion(version))
	if err != nil {
		return nil, fmt.Errorf("app init error: %w", err)
	}
	return app, nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, renamer.ErrCollision):
		return exitCollision
	case errors.Is(err, renamer.ErrIOFailure):
		return exitRenameIO
	case errors.Is(err, renamer.ErrNotDenote), errors.Is(err, denote.ErrNotDenote):
		return exitNotDenote
	default:
		return exitFailure
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "denote",
		Usage:   "Create, find and rename notes whose file names carry their metadata",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (.yaml or .toml)",
				DefaultText: internal.DefaultConfigFile(),
				Sources:     cli.EnvVars("DENOTE_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			newCommand(),
			findCommand(),
			dateCommand(),
			renameCommand(),
			keywordsCommand(),
			configCommand(),
			mcpCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(exitCode(err))
	}
}
