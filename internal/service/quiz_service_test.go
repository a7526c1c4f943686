package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/render"
	"github.com/quizkit/quiznote/internal/session"
)

// fakeLauncher records launched paths instead of spawning processes.
type fakeLauncher struct {
	detached []string
	ran      []string
	startErr error
	runErr   error
}

func (f *fakeLauncher) LaunchDetached(scriptPath string) error {
	f.detached = append(f.detached, scriptPath)
	return f.startErr
}

func (f *fakeLauncher) Run(ctx context.Context, scriptPath string) (string, error) {
	f.ran = append(f.ran, scriptPath)
	if f.runErr != nil {
		return "", f.runErr
	}
	return "ok", nil
}

// newTestStore seeds a store whose config.json holds exactly raw, so tests
// control the quizbook and notebook paths instead of inheriting home-dir
// defaults.
func newTestStore(t *testing.T, raw string) *config.Store {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	return config.NewStore(dir, zerolog.Nop())
}

func newQuizService(t *testing.T, store *config.Store, launcher Launcher) (*QuizService, *session.Registry) {
	t.Helper()
	renderer, err := render.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	registry := session.NewRegistry(zerolog.Nop())
	return NewQuizService(registry, renderer, launcher, store, zerolog.Nop()), registry
}

func generateRequest() *model.GenerateQuizRequest {
	return &model.GenerateQuizRequest{
		Question:         "What is 2 + 2?",
		Options:          []string{"3", "4", "5"},
		CorrectIndex:     1,
		Explanation:      "Basic arithmetic.",
		KnowledgeSummary: "addition | carries",
		Category:         "Math",
	}
}

func TestGenerateWritesArtifactAndLaunches(t *testing.T) {
	quizbook := t.TempDir()
	store := newTestStore(t, `{"quizbookPath": "`+quizbook+`", "notebookPath": "", "autoQuizEnabled": true}`)
	launcher := &fakeLauncher{}
	svc, registry := newQuizService(t, store, launcher)

	res, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if res.SessionID == "" {
		t.Error("empty session id")
	}
	if !res.AutoQuizEnabled {
		t.Error("AutoQuizEnabled not propagated from settings")
	}
	if filepath.Dir(res.ArtifactPath) != quizbook {
		t.Errorf("artifact written to %s, want quizbook %s", res.ArtifactPath, quizbook)
	}
	if !strings.HasSuffix(res.ArtifactPath, ".py") {
		t.Errorf("artifact %s must be a .py script", res.ArtifactPath)
	}

	doc, err := os.ReadFile(res.ArtifactPath)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if _, err := render.ExtractPayload(string(doc)); err != nil {
		t.Errorf("artifact has no extractable payload: %v", err)
	}

	if len(launcher.detached) != 1 || launcher.detached[0] != res.ArtifactPath {
		t.Errorf("launched %v, want [%s]", launcher.detached, res.ArtifactPath)
	}
	if registry.Len() != 1 {
		t.Errorf("registry has %d sessions, want 1", registry.Len())
	}
}

func TestGenerateCorrectIndexOutOfRange(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "", "notebookPath": ""}`)
	svc, registry := newQuizService(t, store, &fakeLauncher{})

	for _, index := range []int{-1, 3} {
		req := generateRequest()
		req.CorrectIndex = index
		if _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrCorrectIndexOutOfRange) {
			t.Errorf("Generate(correctIndex=%d) error = %v, want ErrCorrectIndexOutOfRange", index, err)
		}
	}
	if registry.Len() != 0 {
		t.Errorf("rejected requests must not leave sessions, got %d", registry.Len())
	}
}

func TestGenerateSurvivesLaunchFailure(t *testing.T) {
	quizbook := t.TempDir()
	store := newTestStore(t, `{"quizbookPath": "`+quizbook+`", "notebookPath": ""}`)
	launcher := &fakeLauncher{startErr: errors.New("no python")}
	svc, _ := newQuizService(t, store, launcher)

	res, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v, launch failures must not fail generation", err)
	}
	if _, err := os.Stat(res.ArtifactPath); err != nil {
		t.Errorf("artifact missing after launch failure: %v", err)
	}
}

func TestGenerateWithoutQuizbookUsesTempDir(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "", "notebookPath": ""}`)
	svc, _ := newQuizService(t, store, &fakeLauncher{})

	res, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	defer os.Remove(res.ArtifactPath)

	if filepath.Dir(res.ArtifactPath) != filepath.Clean(os.TempDir()) {
		t.Errorf("artifact in %s, want temp dir %s", filepath.Dir(res.ArtifactPath), os.TempDir())
	}

	// Without a quizbook there is nothing to save notes against either, so
	// the artifact stays the minimal layout.
	doc, err := os.ReadFile(res.ArtifactPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(doc), "Save to notebook") {
		t.Error("minimal artifact must not carry notebook affordances")
	}
}

func TestGenerateThenSubmit(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "", "notebookPath": ""}`)
	svc, _ := newQuizService(t, store, &fakeLauncher{})

	res, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	defer os.Remove(res.ArtifactPath)

	fb, err := svc.SubmitAnswer(res.SessionID, 1)
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if !fb.Correct || fb.CorrectLabel != "B" || fb.CorrectOption != "4" {
		t.Errorf("feedback = %+v, want correct answer B. 4", fb)
	}

	if _, err := svc.SubmitAnswer(res.SessionID, 0); !errors.Is(err, session.ErrAlreadyAnswered) {
		t.Errorf("second submit error = %v, want ErrAlreadyAnswered", err)
	}

	detail, err := svc.Feedback(res.SessionID)
	if err != nil {
		t.Fatalf("Feedback() error = %v", err)
	}
	if detail.Status != model.StatusCorrect {
		t.Errorf("status = %q, want %q", detail.Status, model.StatusCorrect)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "", "notebookPath": ""}`)
	svc, _ := newQuizService(t, store, &fakeLauncher{})

	if _, err := svc.SubmitAnswer("missing", 0); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("SubmitAnswer() error = %v, want ErrNotFound", err)
	}
}
