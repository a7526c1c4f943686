package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestHistoryListAndPayload(t *testing.T) {
	quizbook := t.TempDir()
	store := newTestStore(t, `{"quizbookPath": "`+quizbook+`", "notebookPath": ""}`)
	svc, _ := newQuizService(t, store, &fakeLauncher{})
	history := NewHistoryService(store, zerolog.Nop())

	req := generateRequest()
	res, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	list, err := history.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List() returned %d artifacts, want 1", len(list))
	}
	if want := filepath.Base(res.ArtifactPath); list[0].Name != want {
		t.Errorf("List()[0].Name = %q, want %q", list[0].Name, want)
	}

	quiz, err := history.Payload(list[0].Name)
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if quiz.Question != req.Question || quiz.CorrectIndex != req.CorrectIndex {
		t.Errorf("payload = %+v, want the generated quiz", quiz)
	}
}

func TestHistoryListMissingDir(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "`+filepath.Join(t.TempDir(), "never-created")+`", "notebookPath": ""}`)
	history := NewHistoryService(store, zerolog.Nop())

	list, err := history.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %v, want empty", list)
	}
}

func TestHistoryPayloadBadName(t *testing.T) {
	store := newTestStore(t, `{"quizbookPath": "`+t.TempDir()+`", "notebookPath": ""}`)
	history := NewHistoryService(store, zerolog.Nop())

	for _, name := range []string{"", "../escape.py", ".hidden.py", "a/b.py"} {
		if _, err := history.Payload(name); !errors.Is(err, ErrBadArtifactName) {
			t.Errorf("Payload(%q) error = %v, want ErrBadArtifactName", name, err)
		}
	}

	if _, err := history.Payload("missing.py"); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("Payload(missing) error = %v, want ErrArtifactNotFound", err)
	}
}
