package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/model"
	"github.com/quizkit/quiznote/internal/response"
	"github.com/quizkit/quiznote/internal/validator"
)

// SetQuizbookPathTool persists the quizbook directory.
type SetQuizbookPathTool struct {
	store *config.Store
}

// NewSetQuizbookPathTool creates the set_quizbook_path tool.
func NewSetQuizbookPathTool(store *config.Store) *SetQuizbookPathTool {
	return &SetQuizbookPathTool{store: store}
}

// Definition declares the set_quizbook_path schema.
func (t *SetQuizbookPathTool) Definition() mcp.Tool {
	return mcp.NewTool("set_quizbook_path",
		mcp.WithDescription("Set the directory where generated quiz files are saved. "+
			"The directory is created if missing and the setting is persisted."),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Directory for saved quiz files.")),
	)
}

// Handle executes set_quizbook_path.
func (t *SetQuizbookPathTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SetPathRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	if err := t.store.SetQuizbookPath(in.Path); err != nil {
		return codeResult(response.ErrInvalidPath, err.Error()), nil
	}
	return mcp.NewToolResultText(
		fmt.Sprintf("Quizbook path set to %s", t.store.Settings().QuizbookPath)), nil
}

// SetNotebookPathTool persists the notebook directory.
type SetNotebookPathTool struct {
	store *config.Store
}

// NewSetNotebookPathTool creates the set_notebook_path tool.
func NewSetNotebookPathTool(store *config.Store) *SetNotebookPathTool {
	return &SetNotebookPathTool{store: store}
}

// Definition declares the set_notebook_path schema.
func (t *SetNotebookPathTool) Definition() mcp.Tool {
	return mcp.NewTool("set_notebook_path",
		mcp.WithDescription("Set the directory where study notes and exported PDFs are saved. "+
			"The directory is created if missing and the setting is persisted."),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Directory for notes and exported PDFs.")),
	)
}

// Handle executes set_notebook_path.
func (t *SetNotebookPathTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SetPathRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	if err := t.store.SetNotebookPath(in.Path); err != nil {
		return codeResult(response.ErrInvalidPath, err.Error()), nil
	}
	return mcp.NewToolResultText(
		fmt.Sprintf("Notebook path set to %s", t.store.Settings().NotebookPath)), nil
}

// ToggleAutoQuizTool persists the auto-quiz flag.
type ToggleAutoQuizTool struct {
	store *config.Store
}

// NewToggleAutoQuizTool creates the toggle_auto_quiz tool.
func NewToggleAutoQuizTool(store *config.Store) *ToggleAutoQuizTool {
	return &ToggleAutoQuizTool{store: store}
}

// Definition declares the toggle_auto_quiz schema.
func (t *ToggleAutoQuizTool) Definition() mcp.Tool {
	return mcp.NewTool("toggle_auto_quiz",
		mcp.WithDescription("Enable or disable proactive quiz generation after explanations."),
		mcp.WithBoolean("enabled", mcp.Required(),
			mcp.Description("true to enable auto-quiz, false to disable.")),
	)
}

// Handle executes toggle_auto_quiz.
func (t *ToggleAutoQuizTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.ToggleAutoQuizRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}

	if err := t.store.SetAutoQuiz(in.Enabled); err != nil {
		return errResult(err), nil
	}
	state := "disabled"
	if in.Enabled {
		state = "enabled"
	}
	return mcp.NewToolResultText("Auto-quiz " + state + "."), nil
}
