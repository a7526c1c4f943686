package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// SettingsFile is the name of the persisted settings file inside ConfigDir.
const SettingsFile = "config.json"

// Settings are the user-adjustable values persisted across runs, as opposed
// to Config which is environment-only.
type Settings struct {
	// QuizbookPath is the directory quiz viewer scripts are saved into.
	// Empty means quizzes are rendered into the OS temp dir and not kept.
	QuizbookPath string `json:"quizbookPath"`
	// NotebookPath is the directory study notes and exported PDFs go into.
	NotebookPath string `json:"notebookPath"`
	// AutoQuizEnabled signals the assistant to generate quizzes proactively.
	AutoQuizEnabled bool `json:"autoQuizEnabled"`
}

// Store owns the settings file: load at startup merged over defaults,
// persist on every mutation. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	path     string
	settings Settings
	log      zerolog.Logger
}

// NewStore loads settings from dir/config.json. A missing or unreadable file
// yields defaults without error; a corrupt file is logged and replaced on the
// next mutation.
func NewStore(dir string, log zerolog.Logger) *Store {
	s := &Store{
		path:     filepath.Join(dir, SettingsFile),
		settings: defaultSettings(),
		log:      log.With().Str("component", "config_store").Logger(),
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("settings file unreadable, using defaults")
		}
		return s
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	if err := json.Unmarshal(raw, &s.settings); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("settings file corrupt, using defaults")
		s.settings = defaultSettings()
	}
	return s
}

func defaultSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Settings{
		QuizbookPath:    filepath.Join(home, "QuizNote", "quizbook"),
		NotebookPath:    filepath.Join(home, "QuizNote", "notebook"),
		AutoQuizEnabled: false,
	}
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetQuizbookPath validates the directory (creating it if needed) and persists.
func (s *Store) SetQuizbookPath(path string) error {
	return s.setPath(path, func(st *Settings, p string) { st.QuizbookPath = p })
}

// SetNotebookPath validates the directory (creating it if needed) and persists.
func (s *Store) SetNotebookPath(path string) error {
	return s.setPath(path, func(st *Settings, p string) { st.NotebookPath = p })
}

func (s *Store) setPath(path string, assign func(*Settings, string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	assign(&s.settings, abs)
	return s.persist()
}

// SetAutoQuiz flips the auto-quiz flag and persists.
func (s *Store) SetAutoQuiz(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AutoQuizEnabled = enabled
	return s.persist()
}

// persist writes the settings file. Callers must hold s.mu.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
