// Package noteservice implements the create, find, rename and keyword
// completion operations on top of a notes directory.
package noteservice

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/starford/denote/internal/apperr"
	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/frontmatter"
	"github.com/starford/denote/internal/index"
	"github.com/starford/denote/internal/locator"
	"github.com/starford/denote/internal/models"
	"github.com/starford/denote/internal/renamer"
	"github.com/starford/denote/internal/storage"
)

// Settings are the explicit configuration values the service runs with.
type Settings struct {
	// DefaultExtension is used when Create is given no extension.
	DefaultExtension string
	// FrontMatter writes a header into newly created notes.
	FrontMatter bool
	// Now is the clock identifiers are derived from. Defaults to time.Now.
	Now func() time.Time
}

// Service coordinates the codec, locator, index and renamer over one notes
// directory. Mutating calls are serialized.
type Service struct {
	store    storage.Provider
	settings Settings
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewService creates a new note service.
func NewService(store storage.Provider, settings Settings, logger *slog.Logger) *Service {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, settings: settings, logger: logger}
}

// Root returns the notes directory.
func (s *Service) Root() string { return s.store.Root() }

// Store returns the notes directory provider.
func (s *Service) Store() storage.Provider { return s.store }

// Create makes a new, empty note (header aside) and returns its path.
func (s *Service) Create(_ context.Context, title string, keywords []string, ext string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if ext == "" {
		ext = s.settings.DefaultExtension
	}
	if ext == "" {
		return "", fmt.Errorf("%w: no file extension", apperr.ErrInvalidInput)
	}
	if !denote.IsExtension(ext) {
		return "", fmt.Errorf("%w: extension %q must be lowercase letters and digits", apperr.ErrInvalidInput, ext)
	}

	entries, err := s.store.List()
	if err != nil {
		return "", err
	}
	existing := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		// Reserve identifiers of foreign files named after one too.
		if len(e.Name) >= denote.IdentifierLen && denote.IsIdentifier(e.Name[:denote.IdentifierLen]) {
			existing[e.Name[:denote.IdentifierLen]] = struct{}{}
		}
	}

	now := s.settings.Now()
	id, err := denote.Generate(now, existing)
	if err != nil {
		return "", fmt.Errorf("noteservice: generate identifier: %w", err)
	}

	name := denote.New(id, title, keywords, ext)
	s.warnDropped(title, keywords, name)
	filename := name.Filename()

	var content []byte
	if s.settings.FrontMatter {
		content, err = frontmatter.Render(ext, frontmatter.Header{
			Title:      strings.TrimSpace(title),
			Date:       now,
			Tags:       name.Keywords.Slice(),
			Identifier: id,
		})
		if err != nil {
			return "", err
		}
	}

	if err := s.store.Create(filename, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", apperr.ErrAlreadyExists, filename)
		}
		return "", err
	}

	s.logger.Info("note created", slog.String("name", filename))
	return s.store.Path(filename), nil
}

// warnDropped logs input that did not survive sanitization.
func (s *Service) warnDropped(title string, keywords []string, name denote.NoteName) {
	if name.Title == "" {
		if strings.TrimSpace(title) != "" {
			s.logger.Warn("title has no usable characters, omitting it", slog.String("title", title))
		} else {
			s.logger.Warn("note has no title")
		}
	}
	for _, raw := range keywords {
		for _, word := range strings.Fields(raw) {
			if denote.SanitizeKeyword(word) == "" {
				s.logger.Warn("keyword has no usable characters, dropping it", slog.String("keyword", word))
			}
		}
	}
}

// Find returns the notes carrying every given keyword, oldest first.
func (s *Service) Find(_ context.Context, keywords []string) ([]models.Note, error) {
	required := denote.SanitizeKeywords(keywords...)
	notes, err := locator.Find(s.store, required)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("find", slog.String("keywords", required.String()), slog.Int("matches", len(notes)))
	return notes, nil
}

// FindByDate returns the notes created on day's calendar date, oldest first.
func (s *Service) FindByDate(_ context.Context, day time.Time) ([]models.Note, error) {
	return locator.FindByDate(s.store, day)
}

// ListKeywords returns the keywords in use that start with prefix.
func (s *Service) ListKeywords(_ context.Context, prefix string) ([]string, error) {
	idx, err := index.Build(s.store)
	if err != nil {
		return nil, err
	}
	if idx.Skipped() > 0 {
		s.logger.Debug("index: skipped foreign files", slog.Int("count", idx.Skipped()))
	}
	return idx.Complete(prefix), nil
}

// Describe decodes the note at path.
func (s *Service) Describe(path string) (models.Note, error) {
	store, name, err := s.resolve(path)
	if err != nil {
		return models.Note{}, err
	}
	n, err := denote.Decode(name)
	if err != nil {
		return models.Note{}, err
	}
	return models.Note{Path: store.Path(name), Name: n}, nil
}

// Rename gives the note at path a new title and keyword set and returns its
// new path. The identifier and extension are kept. Errors from the renamer
// are returned unchanged.
func (s *Service) Rename(_ context.Context, path, title string, keywords []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, name, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	newName, err := renamer.Rename(store, name, title, keywords)
	if err != nil {
		return "", err
	}
	if newName == name {
		s.logger.Info("note already has that name", slog.String("name", name))
	} else {
		s.logger.Info("note renamed", slog.String("from", name), slog.String("to", newName))
	}
	return store.Path(newName), nil
}

// resolve maps a bare file name to the notes directory and any other path to
// a provider rooted at its own directory.
func (s *Service) resolve(path string) (storage.Provider, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: empty path", apperr.ErrInvalidInput)
	}
	if filepath.Base(path) == path {
		return s.store, path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("noteservice: resolve %s: %w", path, err)
	}
	dir, name := filepath.Split(abs)
	dir = filepath.Clean(dir)
	if dir == s.store.Root() {
		return s.store, name, nil
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", apperr.ErrNotFound, dir)
		}
		return nil, "", err
	}
	return store, name, nil
}
