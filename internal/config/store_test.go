package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewStoreDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zerolog.Nop())

	got := store.Settings()
	want := defaultSettings()
	if got != want {
		t.Errorf("Settings() = %+v, want defaults %+v", got, want)
	}
	if _, err := os.Stat(filepath.Join(dir, SettingsFile)); !os.IsNotExist(err) {
		t.Error("loading defaults must not create the settings file")
	}
}

func TestNewStoreMergesPartialFile(t *testing.T) {
	dir := t.TempDir()
	raw := []byte(`{"quizbookPath": "/data/quizzes"}`)
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got := NewStore(dir, zerolog.Nop()).Settings()
	if got.QuizbookPath != "/data/quizzes" {
		t.Errorf("QuizbookPath = %q, want /data/quizzes", got.QuizbookPath)
	}
	if want := defaultSettings().NotebookPath; got.NotebookPath != want {
		t.Errorf("NotebookPath = %q, want default %q", got.NotebookPath, want)
	}
	if got.AutoQuizEnabled {
		t.Error("AutoQuizEnabled must keep its default")
	}
}

func TestNewStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := NewStore(dir, zerolog.Nop()).Settings()
	if got != defaultSettings() {
		t.Errorf("corrupt file must yield defaults, got %+v", got)
	}
}

func TestSetPathPersistsAndCreatesDir(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zerolog.Nop())

	target := filepath.Join(dir, "books", "go")
	if err := store.SetQuizbookPath(target); err != nil {
		t.Fatalf("SetQuizbookPath() error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("target directory not created: %v", err)
	}
	if got := store.Settings().QuizbookPath; got != target {
		t.Errorf("QuizbookPath = %q, want %q", got, target)
	}

	// A fresh store sees the persisted value.
	reloaded := NewStore(dir, zerolog.Nop()).Settings()
	if reloaded.QuizbookPath != target {
		t.Errorf("reloaded QuizbookPath = %q, want %q", reloaded.QuizbookPath, target)
	}
}

func TestSetNotebookPath(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zerolog.Nop())

	target := filepath.Join(dir, "notes")
	if err := store.SetNotebookPath(target); err != nil {
		t.Fatalf("SetNotebookPath() error = %v", err)
	}
	if got := store.Settings().NotebookPath; got != target {
		t.Errorf("NotebookPath = %q, want %q", got, target)
	}
}

func TestSetAutoQuizPersists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zerolog.Nop())

	if err := store.SetAutoQuiz(true); err != nil {
		t.Fatalf("SetAutoQuiz() error = %v", err)
	}
	if !store.Settings().AutoQuizEnabled {
		t.Error("AutoQuizEnabled not set")
	}

	raw, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	var onDisk Settings
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("settings file invalid: %v", err)
	}
	if !onDisk.AutoQuizEnabled {
		t.Error("persisted AutoQuizEnabled = false, want true")
	}
}
