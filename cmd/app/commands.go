package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/starford/denote/internal/display"
	"github.com/starford/denote/internal/editor"
	"github.com/starford/denote/internal/models"
	pkgconfig "github.com/starford/denote/pkg/config"
)

const dateLayout = "2006-01-02"

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Create a note and open it in the editor",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Note title"},
			&cli.StringSliceFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "Keyword (repeatable, or space-separated)"},
			&cli.StringFlag{Name: "extension", Aliases: []string{"e"}, Usage: "File extension (defaults to notes.extension)"},
			&cli.BoolFlag{Name: "no-edit", Usage: "Only print the new path"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			path, err := app.Service.Create(ctx, cmd.String("title"), cmd.StringSlice("keyword"), cmd.String("extension"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Root().Writer, path)
			if cmd.Bool("no-edit") {
				return nil
			}
			return app.Launcher.Open(ctx, path)
		},
	}
}

func findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "List notes carrying every given keyword",
		ArgsUsage: "[KEYWORD...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "open", Usage: "Open the matches in the editor"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			notes, err := app.Service.Find(ctx, cmd.Args().Slice())
			if err != nil {
				return err
			}
			return show(ctx, cmd, app.Launcher, notes)
		},
	}
}

func dateCommand() *cli.Command {
	return &cli.Command{
		Name:      "date",
		Usage:     "List notes created on a day (default today)",
		ArgsUsage: "[YYYY-MM-DD]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "open", Usage: "Open the matches in the editor"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			day := time.Now()
			if arg := cmd.Args().First(); arg != "" {
				day, err = time.ParseInLocation(dateLayout, arg, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", arg)
				}
			}
			notes, err := app.Service.FindByDate(ctx, day)
			if err != nil {
				return err
			}
			return show(ctx, cmd, app.Launcher, notes)
		},
	}
}

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Change a note's title and/or keywords, keeping its identifier",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title (empty removes it)"},
			&cli.StringSliceFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "New keyword (repeatable)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("rename: PATH is required")
			}
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			current, err := app.Service.Describe(path)
			if err != nil {
				return err
			}
			title := current.Name.Title
			if cmd.IsSet("title") {
				title = cmd.String("title")
			}
			keywords := current.Name.Keywords.Slice()
			if cmd.IsSet("keyword") {
				keywords = cmd.StringSlice("keyword")
			}
			newPath, err := app.Service.Rename(ctx, path, title, keywords)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Root().Writer, newPath)
			return nil
		},
	}
}

func keywordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "keywords",
		Usage:     "List keywords in use, optionally those starting with PREFIX",
		ArgsUsage: "[PREFIX]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			keywords, err := app.Service.ListKeywords(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			return display.NewPrinter(cmd.Root().Writer).Lines(keywords)
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "edit", Usage: "Open the config file in the editor, writing defaults first if missing"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Bool("edit") {
				out, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.Root().Writer.Write(out)
				return err
			}
			path := configPath(cmd)
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				if err := pkgconfig.Save(path, cfg); err != nil {
					return err
				}
			}
			launcher := editor.Launcher{TextEditor: cfg.Editor.TextEditor}
			return launcher.Open(ctx, path)
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the note tools to an MCP client over stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return app.ServeMCP(ctx)
		},
	}
}

// show prints notes, then opens each in turn when --open is set.
func show(ctx context.Context, cmd *cli.Command, launcher editor.Launcher, notes []models.Note) error {
	if err := display.NewPrinter(cmd.Root().Writer).Notes(notes); err != nil {
		return err
	}
	if !cmd.Bool("open") {
		return nil
	}
	for _, n := range notes {
		if err := launcher.Open(ctx, n.Path); err != nil {
			return err
		}
	}
	return nil
}
