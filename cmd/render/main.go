// Command render builds a quiz viewer artifact from a quiz JSON file.
// Useful for re-rendering saved payloads and for debugging templates
// without going through the MCP server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/launcher"
	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/render"
)

func main() {
	var (
		inPath   = flag.String("in", "", "path to a quiz JSON file (required)")
		outDir   = flag.String("out", ".", "directory to write the artifact into")
		variant  = flag.String("variant", "minimal", "viewer variant: minimal or notebook")
		notebook = flag.String("notebook", "", "notebook directory embedded into the notebook variant")
		open     = flag.Bool("open", false, "launch the viewer after rendering")
		python   = flag.String("python", "python3", "python interpreter used with -open")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		fatal("read input: %v", err)
	}

	var quiz model.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		fatal("decode quiz: %v", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		fatal("parse templates: %v", err)
	}

	opts := render.Options{Variant: render.Variant(*variant), NotebookPath: *notebook}
	doc, err := renderer.Render(quiz, opts)
	if err != nil {
		fatal("render: %v", err)
	}

	outPath := filepath.Join(*outDir, render.ArtifactName(quiz))
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		fatal("write artifact: %v", err)
	}
	fmt.Println(outPath)

	if *open {
		procs := launcher.New(*python, zerolog.Nop())
		if err := procs.LaunchDetached(outPath); err != nil {
			fatal("launch viewer: %v", err)
		}
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
