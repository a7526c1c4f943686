package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/render"
)

// Sentinel errors for history lookups.
var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrBadArtifactName  = errors.New("invalid artifact name")
)

// ArtifactInfo describes one saved quiz artifact in the quizbook.
type ArtifactInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// HistoryService reads the quizbook directory. It never mutates anything;
// artifacts are written by quiz generation only.
type HistoryService struct {
	store *config.Store
	log   zerolog.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store *config.Store, log zerolog.Logger) *HistoryService {
	return &HistoryService{
		store: store,
		log:   log.With().Str("component", "history_service").Logger(),
	}
}

// List returns the saved artifacts, newest first. A missing quizbook
// directory yields an empty history, not an error.
func (s *HistoryService) List() ([]ArtifactInfo, error) {
	dir := s.store.Settings().QuizbookPath
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read quizbook: %w", err)
	}

	var out []ArtifactInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".py") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, ArtifactInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Modified.Equal(out[j].Modified) {
			return out[i].Modified.After(out[j].Modified)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Payload extracts the embedded quiz from one saved artifact by name.
func (s *HistoryService) Payload(name string) (*model.Quiz, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrBadArtifactName
	}

	dir := s.store.Settings().QuizbookPath
	if dir == "" {
		return nil, ErrArtifactNotFound
	}

	doc, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	raw, err := render.ExtractPayload(string(doc))
	if err != nil {
		return nil, fmt.Errorf("extract payload from %s: %w", name, err)
	}

	var quiz model.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, fmt.Errorf("decode payload from %s: %w", name, err)
	}
	return &quiz, nil
}
