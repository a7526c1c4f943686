package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/service"
	"github.com/quizkit/quiznote/internal/validator"
)

// SaveNotePDFTool exports a structured study note as a PDF.
type SaveNotePDFTool struct {
	svc *service.NotebookService
}

// NewSaveNotePDFTool creates the save_notebook_note_pdf tool.
func NewSaveNotePDFTool(svc *service.NotebookService) *SaveNotePDFTool {
	return &SaveNotePDFTool{svc: svc}
}

// Definition declares the save_notebook_note_pdf schema.
func (t *SaveNotePDFTool) Definition() mcp.Tool {
	return mcp.NewTool("save_notebook_note_pdf",
		mcp.WithDescription("Render a structured study note as a PDF into the notebook directory. "+
			"Waits for the renderer and reports success or the failure output."),
		mcp.WithString("topic", mcp.Required(),
			mcp.Description("Note title, also used for the PDF filename.")),
		mcp.WithArray("sections",
			mcp.Description("Titled content blocks, each {heading, body}."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"heading": map[string]any{"type": "string"},
					"body":    map[string]any{"type": "string"},
				},
				"required": []string{"heading", "body"},
			})),
		mcp.WithArray("keyPoints",
			mcp.Description("Bulleted key points."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithObject("table",
			mcp.Description("Optional table: {headers: [...], rows: [[...]]}."),
			mcp.Properties(map[string]any{
				"headers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"rows": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			})),
		mcp.WithObject("chart",
			mcp.Description("Optional bar chart: {title, labels: [...], values: [...]}."),
			mcp.Properties(map[string]any{
				"title":  map[string]any{"type": "string"},
				"labels": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"values": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			})),
	)
}

// Handle executes save_notebook_note_pdf. Unlike the quiz viewer launch this
// run is awaited, so renderer failures are reported to the caller.
func (t *SaveNotePDFTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SaveNotePDFRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	path, err := t.svc.SavePDF(ctx, &in)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText("Note PDF saved to " + path), nil
}

// HistoryTool lists the saved quiz artifacts.
type HistoryTool struct {
	svc *service.HistoryService
}

// NewHistoryTool creates the list_quiz_history tool.
func NewHistoryTool(svc *service.HistoryService) *HistoryTool {
	return &HistoryTool{svc: svc}
}

// Definition declares the list_quiz_history schema.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("list_quiz_history",
		mcp.WithDescription("List the quiz files saved in the quizbook directory, newest first."),
	)
}

// Handle executes list_quiz_history.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	artifacts, err := t.svc.List()
	if err != nil {
		return errResult(err), nil
	}
	if len(artifacts) == 0 {
		return mcp.NewToolResultText("No saved quizzes yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d saved quizzes:\n", len(artifacts))
	for _, a := range artifacts {
		fmt.Fprintf(&b, "  %s  (%s)\n", a.Name, a.Modified.Format("2006-01-02 15:04"))
	}
	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
