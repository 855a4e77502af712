package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/denote/pkg/config"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Setenv("EDITOR", "")
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.Editor.TextEditor != "nano" {
		t.Errorf("text editor = %q, want nano", cfg.Editor.TextEditor)
	}
}

func TestDefaultConfig_EditorFromEnv(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	if got := NewDefaultConfig().Editor.TextEditor; got != "vim" {
		t.Errorf("text editor = %q, want vim", got)
	}
}

func TestNotesConfig_Extension(t *testing.T) {
	cases := []struct {
		ext   string
		valid bool
	}{
		{"md", true},
		{".org", true},
		{"txt2", true},
		{"", false},
		{"MD", false},
		{"tar.gz", false},
	}
	for _, tc := range cases {
		cfg := NotesConfig{Path: "/notes", Extension: tc.ext}
		err := cfg.Validate()
		if (err == nil) != tc.valid {
			t.Errorf("extension %q: err = %v, want valid=%v", tc.ext, err, tc.valid)
		}
	}
}

func TestNotesConfig_PathRequired(t *testing.T) {
	cfg := NotesConfig{Extension: "md"}
	if err := cfg.Validate(); err == nil {
		t.Error("empty path should fail validation")
	}
}

func TestNotesConfig_Dir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := NotesConfig{Path: "~/notes"}
	got, err := cfg.Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != filepath.Join(home, "notes") {
		t.Errorf("Dir = %q, want %q", got, filepath.Join(home, "notes"))
	}

	cfg.Path = "/abs/notes"
	if got, _ := cfg.Dir(); got != "/abs/notes" {
		t.Errorf("Dir = %q", got)
	}
}

func TestEditorConfig_Required(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.TextEditor = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch editor error")
	}
}

func TestConfig_LoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[app]\nlog_level = \"DEBUG\"\n\n[notes]\npath = \"/srv/notes\"\nextension = \"org\"\nfront_matter = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := config.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notes.Path != "/srv/notes" || cfg.Notes.Extension != "org" || cfg.Notes.FrontMatter {
		t.Errorf("notes = %+v", cfg.Notes)
	}
	if cfg.App.LogLevel.String() != "DEBUG" {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
	if cfg.Editor.PDFViewer != "zathura" {
		t.Errorf("unset key lost its default: %+v", cfg.Editor)
	}
}

func TestConfig_LoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "notes:\n  extension: txt\neditor:\n  text_editor: \"code -w\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := config.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notes.Extension != "txt" || cfg.Editor.TextEditor != "code -w" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Notes.Path != "~/notes" {
		t.Errorf("path default lost: %q", cfg.Notes.Path)
	}
}
