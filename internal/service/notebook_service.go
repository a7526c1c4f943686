package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/render"
)

// ErrNotebookNotConfigured is returned when a note export is requested
// before a notebook path has been set.
var ErrNotebookNotConfigured = errors.New("notebook path not configured")

// NotebookService exports study notes as PDFs through the awaited renderer.
type NotebookService struct {
	renderer *render.Renderer
	launcher Launcher
	store    *config.Store
	log      zerolog.Logger
}

// NewNotebookService creates a new NotebookService.
func NewNotebookService(renderer *render.Renderer, launcher Launcher, store *config.Store, log zerolog.Logger) *NotebookService {
	return &NotebookService{
		renderer: renderer,
		launcher: launcher,
		store:    store,
		log:      log.With().Str("component", "notebook_service").Logger(),
	}
}

// SavePDF renders the note into a temporary builder script, runs it awaited,
// and returns the path of the produced PDF. Renderer failures carry the
// script's stderr.
func (s *NotebookService) SavePDF(ctx context.Context, req *model.SaveNotePDFRequest) (string, error) {
	notebook := s.store.Settings().NotebookPath
	if notebook == "" {
		return "", ErrNotebookNotConfigured
	}
	if err := os.MkdirAll(notebook, 0o755); err != nil {
		return "", fmt.Errorf("create notebook dir: %w", err)
	}

	date := time.Now().Format("20060102")
	outputPath := filepath.Join(notebook, render.NoteName(req.Topic, date))

	script, err := s.renderer.RenderNoteScript(*req, outputPath)
	if err != nil {
		return "", fmt.Errorf("render note script: %w", err)
	}

	scriptPath := filepath.Join(os.TempDir(), "quiznote_pdf_"+uuid.New().String()+".py")
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		return "", fmt.Errorf("write note script: %w", err)
	}
	defer os.Remove(scriptPath)

	if _, err := s.launcher.Run(ctx, scriptPath); err != nil {
		s.log.Error().Err(err).Str("topic", req.Topic).Msg("note pdf render failed")
		return "", err
	}

	s.log.Info().Str("topic", req.Topic).Str("output", outputPath).Msg("note pdf saved")
	return outputPath, nil
}
