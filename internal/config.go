package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/denote/internal/denote"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app" toml:"app"`
	Notes  NotesConfig       `yaml:"notes" toml:"notes"`
	Editor EditorConfig      `yaml:"editor" toml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	return c.Editor.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level" toml:"log_level"`
}

// NotesConfig describes the notes directory and how new notes are written.
type NotesConfig struct {
	Path        string `yaml:"path" toml:"path"`
	Extension   string `yaml:"extension" toml:"extension"`
	FrontMatter bool   `yaml:"front_matter" toml:"front_matter"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Extension, validation.Required,
			validation.By(validExtension)),
	)
}

func validExtension(value interface{}) error {
	if ext, _ := value.(string); !denote.IsExtension(ext) {
		return errors.New("must be lowercase letters and digits")
	}
	return nil
}

// Dir returns the notes directory with a leading ~ expanded.
func (c *NotesConfig) Dir() (string, error) {
	path := c.Path
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// EditorConfig names the programs notes are opened with.
type EditorConfig struct {
	TextEditor string `yaml:"text_editor" toml:"text_editor"`
	PDFViewer  string `yaml:"pdf_viewer" toml:"pdf_viewer"`
}

// Validate validates the editor configuration.
func (c *EditorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TextEditor, validation.Required),
	)
}

// DefaultConfigFile returns where the configuration is looked up when no
// path is given.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "denote", "config.yaml")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Notes: NotesConfig{
			Path:        "~/notes",
			Extension:   "md",
			FrontMatter: true,
		},
		Editor: EditorConfig{
			TextEditor: editor,
			PDFViewer:  "zathura",
		},
	}
}
