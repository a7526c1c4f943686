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
	"github.com/quizkit/quiznote/internal/session"
)

// Sentinel errors for quiz operations.
var (
	ErrCorrectIndexOutOfRange = errors.New("correct index out of range")
)

// Launcher is the subset of process control the services need. The detached
// variant has an explicit non-result contract: nothing after a successful
// start is ever reported.
type Launcher interface {
	LaunchDetached(scriptPath string) error
	Run(ctx context.Context, scriptPath string) (string, error)
}

// QuizService orchestrates quiz generation and grading.
type QuizService struct {
	registry *session.Registry
	renderer *render.Renderer
	launcher Launcher
	store    *config.Store
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	registry *session.Registry,
	renderer *render.Renderer,
	launcher Launcher,
	store *config.Store,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		registry: registry,
		renderer: renderer,
		launcher: launcher,
		store:    store,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// Generate creates the quiz and its session, renders the viewer artifact,
// writes it to the quizbook (or temp dir when no quizbook is configured) and
// fire-and-forget launches the viewer. Launch failures are logged only.
func (s *QuizService) Generate(ctx context.Context, req *model.GenerateQuizRequest) (*model.GenerateResult, error) {
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		return nil, fmt.Errorf("%w: %d of %d options", ErrCorrectIndexOutOfRange, req.CorrectIndex, len(req.Options))
	}

	quiz := model.Quiz{
		ID:               uuid.New().String(),
		Question:         req.Question,
		Options:          req.Options,
		CorrectIndex:     req.CorrectIndex,
		Explanation:      req.Explanation,
		KnowledgeSummary: req.KnowledgeSummary,
		Category:         req.Category,
		CreatedAt:        time.Now().Format(model.TimeLayout),
	}

	sessionID := s.registry.Create(quiz)

	settings := s.store.Settings()
	opts := render.Options{Variant: render.VariantMinimal}
	dir := os.TempDir()
	if settings.QuizbookPath != "" {
		dir = settings.QuizbookPath
		opts.Variant = render.VariantNotebook
		opts.NotebookPath = settings.NotebookPath
	}

	doc, err := s.renderer.Render(quiz, opts)
	if err != nil {
		return nil, fmt.Errorf("render quiz: %w", err)
	}

	artifactPath := filepath.Join(dir, render.ArtifactName(quiz))
	if err := writeArtifact(artifactPath, doc); err != nil {
		return nil, err
	}

	// Fire-and-forget: by contract the viewer's fate is not part of the
	// result. A start failure only leaves a diagnostic line.
	if err := s.launcher.LaunchDetached(artifactPath); err != nil {
		s.log.Warn().Err(err).Str("artifact", artifactPath).Msg("viewer launch failed")
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("artifact", artifactPath).
		Str("category", quiz.Category).
		Msg("quiz generated")

	return &model.GenerateResult{
		SessionID:       sessionID,
		ArtifactPath:    artifactPath,
		AutoQuizEnabled: settings.AutoQuizEnabled,
	}, nil
}

// SubmitAnswer grades the session. Delegates session errors unchanged so the
// tool boundary can map them to codes.
func (s *QuizService) SubmitAnswer(sessionID string, selectedIndex int) (*model.Feedback, error) {
	fb, err := s.registry.Submit(sessionID, selectedIndex)
	if err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}
	return fb, nil
}

// Feedback returns the session's current detailed state.
func (s *QuizService) Feedback(sessionID string) (*model.DetailedFeedback, error) {
	fb, err := s.registry.Feedback(sessionID)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return fb, nil
}

// Skip removes the session. Unknown ids are a no-op.
func (s *QuizService) Skip(sessionID string) {
	s.registry.Skip(sessionID)
}

// writeArtifact persists a rendered document, creating parent directories.
func writeArtifact(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
