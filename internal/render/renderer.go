// Package render turns structured quiz and note data into standalone,
// self-contained Python scripts that an external interpreter can run without
// this process being alive.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/quizkit/quiznote/internal/model"
)

// Variant selects the viewer layout.
type Variant string

const (
	// VariantMinimal renders and grades the quiz only.
	VariantMinimal Variant = "minimal"
	// VariantNotebook adds note-taking and notebook-save affordances.
	VariantNotebook Variant = "notebook"
)

// ErrNoPayload is returned when a document carries no extractable payload.
var ErrNoPayload = errors.New("no embedded payload found")

// Options configure a single Render call.
type Options struct {
	Variant Variant
	// NotebookPath is embedded into the notebook variant so the artifact can
	// save notes without talking back to this process.
	NotebookPath string
}

// Renderer renders viewer and note scripts from parsed templates.
type Renderer struct {
	minimal  *template.Template
	notebook *template.Template
	note     *template.Template
}

// NewRenderer parses all templates once.
func NewRenderer() (*Renderer, error) {
	minimal, err := template.New("minimal").Parse(minimalViewerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse minimal template: %w", err)
	}
	notebook, err := template.New("notebook").Parse(notebookViewerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse notebook template: %w", err)
	}
	note, err := template.New("note").Parse(noteScriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse note template: %w", err)
	}
	return &Renderer{minimal: minimal, notebook: notebook, note: note}, nil
}

type viewerData struct {
	PayloadJSON  string
	NotebookPath string
}

// Render produces the viewer script for quiz.
func (r *Renderer) Render(quiz model.Quiz, opts Options) (string, error) {
	payload, err := marshalPayload(quiz)
	if err != nil {
		return "", fmt.Errorf("encode quiz payload: %w", err)
	}

	tmpl := r.minimal
	if opts.Variant == VariantNotebook {
		tmpl = r.notebook
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, viewerData{
		PayloadJSON:  payload,
		NotebookPath: opts.NotebookPath,
	})
	if err != nil {
		return "", fmt.Errorf("execute viewer template: %w", err)
	}
	return buf.String(), nil
}

type noteData struct {
	PayloadJSON string
	OutputPath  string
}

// RenderNoteScript produces the awaited PDF-builder script for a notebook
// note, writing its output to outputPath when executed.
func (r *Renderer) RenderNoteScript(note model.SaveNotePDFRequest, outputPath string) (string, error) {
	payload, err := marshalJSON(note)
	if err != nil {
		return "", fmt.Errorf("encode note payload: %w", err)
	}

	var buf bytes.Buffer
	err = r.note.Execute(&buf, noteData{PayloadJSON: payload, OutputPath: outputPath})
	if err != nil {
		return "", fmt.Errorf("execute note template: %w", err)
	}
	return buf.String(), nil
}

// ExtractPayload recovers the embedded quiz JSON from a rendered viewer
// document. The inverse of Render with respect to the payload.
func ExtractPayload(doc string) ([]byte, error) {
	begin := strings.Index(doc, payloadBeginMarker)
	end := strings.Index(doc, payloadEndMarker)
	if begin < 0 || end < 0 || end <= begin {
		return nil, ErrNoPayload
	}
	block := doc[begin+len(payloadBeginMarker) : end]

	open := strings.Index(block, `"""`)
	if open < 0 {
		return nil, ErrNoPayload
	}
	block = block[open+3:]
	closing := strings.LastIndex(block, `"""`)
	if closing < 0 {
		return nil, ErrNoPayload
	}

	raw := strings.TrimSpace(block[:closing])
	if raw == "" {
		return nil, ErrNoPayload
	}
	return []byte(raw), nil
}

// marshalPayload pretty-prints a quiz for embedding. HTML escaping is off so
// the artifact stays human-readable.
func marshalPayload(quiz model.Quiz) (string, error) {
	return marshalJSON(quiz)
}

func marshalJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
