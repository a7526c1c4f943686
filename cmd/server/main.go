package main

import (
	"context"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/handler"
	"github.com/quizkit/quiznote/internal/launcher"
	"github.com/quizkit/quiznote/internal/logger"
	"github.com/quizkit/quiznote/internal/render"
	"github.com/quizkit/quiznote/internal/router"
	"github.com/quizkit/quiznote/internal/service"
	"github.com/quizkit/quiznote/internal/session"
	"github.com/quizkit/quiznote/internal/tool"
	"github.com/quizkit/quiznote/internal/validator"
	"github.com/quizkit/quiznote/internal/worker"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("version", Version).
		Str("config_dir", cfg.ConfigDir).
		Str("log_level", cfg.LogLevel).
		Msg("Starting QuizNote")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Components ─────────────────────────────────────────
	store := config.NewStore(cfg.ConfigDir, log)
	registry := session.NewRegistry(log)

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	procs := launcher.New(cfg.PythonBin, log)

	quizService := service.NewQuizService(registry, renderer, procs, store, log)
	notebookService := service.NewNotebookService(renderer, procs, store, log)
	historyService := service.NewHistoryService(store, log)

	// ─── Create MCP Server ─────────────────────────────────────────────
	s := server.NewMCPServer(
		"quiznote",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions(store.Settings().AutoQuizEnabled)),
	)

	generateTool := tool.NewGenerateTool(quizService)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	submitTool := tool.NewSubmitTool(quizService)
	s.AddTool(submitTool.Definition(), submitTool.Handle)

	feedbackTool := tool.NewFeedbackTool(quizService)
	s.AddTool(feedbackTool.Definition(), feedbackTool.Handle)

	skipTool := tool.NewSkipTool(quizService)
	s.AddTool(skipTool.Definition(), skipTool.Handle)

	quizbookPathTool := tool.NewSetQuizbookPathTool(store)
	s.AddTool(quizbookPathTool.Definition(), quizbookPathTool.Handle)

	notebookPathTool := tool.NewSetNotebookPathTool(store)
	s.AddTool(notebookPathTool.Definition(), notebookPathTool.Handle)

	autoQuizTool := tool.NewToggleAutoQuizTool(store)
	s.AddTool(autoQuizTool.Definition(), autoQuizTool.Handle)

	notePDFTool := tool.NewSaveNotePDFTool(notebookService)
	s.AddTool(notePDFTool.Definition(), notePDFTool.Handle)

	historyTool := tool.NewHistoryTool(historyService)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if cfg.SessionTTL > 0 {
		reaper := worker.NewSessionReaper(registry, cfg.SessionTTL, log)
		go reaper.Start(workerCtx)
	}

	// ─── Start Front-end API (optional) ────────────────────────────────
	var httpSrv *http.Server
	if cfg.HTTPPort != "" {
		frontend := handler.NewFrontendHandler(store, registry, historyService)
		r := router.SetupRouter(frontend, cfg)
		httpSrv = &http.Server{Addr: ":" + cfg.HTTPPort, Handler: r}

		go func() {
			log.Info().Str("addr", httpSrv.Addr).Msg("Front-end API listening")
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("Front-end API error")
			}
		}()
	}

	// ─── Serve MCP over stdio ──────────────────────────────────────────
	// Blocks until the host closes stdin.
	if err := server.ServeStdio(s); err != nil {
		log.Error().Err(err).Msg("Stdio server error")
	}

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	log.Info().Msg("Shutting down gracefully...")
	workerCancel()

	if httpSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Front-end API shutdown error")
		}
	}

	log.Info().Msg("Shutdown complete")
}

// serverInstructions tells the host assistant how to use the quiz tools.
func serverInstructions(autoQuiz bool) string {
	base := `You have access to QuizNote, a local quiz and study-note server.

## Quizzing the user
- After explaining a concept, you can call generate_quiz to open a quiz
  window on the user's machine. Provide 2-8 options, the zero-based
  correctIndex, an explanation, and optionally a pipe-separated
  knowledgeSummary of the key points.
- When the user tells you their answer, call submit_answer with the
  sessionId and the chosen option index. The first submission is binding.
- get_quiz_feedback reports the current status (pending until answered).
- skip_quiz discards a session the user does not want to take.

## Notebook
- save_notebook_note_pdf exports a structured study note (topic, sections,
  key points, optional table and bar chart) as a PDF into the notebook.
- set_quizbook_path and set_notebook_path configure where files are saved.
- list_quiz_history shows previously saved quizzes.`

	if autoQuiz {
		base += `

Auto-quiz is ENABLED: proactively generate a quiz whenever you finish
explaining a new concept, without waiting to be asked.`
	}
	return base
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
