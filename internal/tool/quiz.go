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

// GenerateTool creates a quiz session and opens the viewer.
type GenerateTool struct {
	svc *service.QuizService
}

// NewGenerateTool creates the generate_quiz tool.
func NewGenerateTool(svc *service.QuizService) *GenerateTool {
	return &GenerateTool{svc: svc}
}

// Definition declares the generate_quiz schema.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_quiz",
		mcp.WithDescription("Generate a multiple-choice quiz from the current learning topic. "+
			"Opens a local quiz window and returns a session id for grading."),
		mcp.WithString("question", mcp.Required(),
			mcp.Description("The question text.")),
		mcp.WithArray("options", mcp.Required(),
			mcp.Description("Ordered answer options (2-8)."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("correctIndex", mcp.Required(),
			mcp.Description("Zero-based index of the correct option.")),
		mcp.WithString("explanation", mcp.Required(),
			mcp.Description("Why the correct option is correct.")),
		mcp.WithString("knowledgeSummary",
			mcp.Description("Pipe-separated list of key knowledge points.")),
		mcp.WithString("category",
			mcp.Description("Optional topic label for the quiz.")),
	)
}

// Handle executes generate_quiz.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.GenerateQuizRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	res, err := t.svc.Generate(ctx, &in)
	if err != nil {
		return errResult(err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Quiz generated and opened.\n")
	fmt.Fprintf(&b, "Session ID: %s\n", res.SessionID)
	fmt.Fprintf(&b, "Artifact: %s\n", res.ArtifactPath)
	b.WriteString("Grade the user's answer with submit_answer, or skip_quiz to discard.")
	if res.AutoQuizEnabled {
		b.WriteString("\nAuto-quiz is enabled: keep generating quizzes after explaining new concepts.")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// SubmitTool grades a session.
type SubmitTool struct {
	svc *service.QuizService
}

// NewSubmitTool creates the submit_answer tool.
func NewSubmitTool(svc *service.QuizService) *SubmitTool {
	return &SubmitTool{svc: svc}
}

// Definition declares the submit_answer schema.
func (t *SubmitTool) Definition() mcp.Tool {
	return mcp.NewTool("submit_answer",
		mcp.WithDescription("Submit the user's answer for a quiz session and get graded feedback. "+
			"The first submission is binding."),
		mcp.WithString("sessionId", mcp.Required(),
			mcp.Description("Session id returned by generate_quiz.")),
		mcp.WithNumber("selectedIndex", mcp.Required(),
			mcp.Description("Zero-based index of the chosen option.")),
	)
}

// Handle executes submit_answer.
func (t *SubmitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SubmitAnswerRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	fb, err := t.svc.SubmitAnswer(in.SessionID, in.SelectedIndex)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatFeedback(fb)), nil
}

func formatFeedback(fb *model.Feedback) string {
	var b strings.Builder
	if fb.Correct {
		fmt.Fprintf(&b, "✅ Correct! The answer is %s. %s\n\n%s",
			fb.CorrectLabel, fb.CorrectOption, fb.Explanation)
	} else {
		fmt.Fprintf(&b, "❌ Incorrect. You chose %s; the correct answer is %s. %s\n\n%s",
			fb.SelectedLabel, fb.CorrectLabel, fb.CorrectOption, fb.Explanation)
		if points := model.SplitKnowledge(fb.KnowledgeSummary); len(points) > 0 {
			b.WriteString("\n\n💡 Key points:")
			for _, p := range points {
				b.WriteString("\n  • " + p)
			}
		}
	}
	return b.String()
}

// FeedbackTool projects a session's current state.
type FeedbackTool struct {
	svc *service.QuizService
}

// NewFeedbackTool creates the get_quiz_feedback tool.
func NewFeedbackTool(svc *service.QuizService) *FeedbackTool {
	return &FeedbackTool{svc: svc}
}

// Definition declares the get_quiz_feedback schema.
func (t *FeedbackTool) Definition() mcp.Tool {
	return mcp.NewTool("get_quiz_feedback",
		mcp.WithDescription("Fetch the current status and explanation for a quiz session. "+
			"Reports pending until an answer has been submitted."),
		mcp.WithString("sessionId", mcp.Required(),
			mcp.Description("Session id returned by generate_quiz.")),
	)
}

// Handle executes get_quiz_feedback.
func (t *FeedbackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SessionIDRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	fb, err := t.svc.Feedback(in.SessionID)
	if err != nil {
		return errResult(err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", fb.Question)
	fmt.Fprintf(&b, "Status: %s\n", fb.Status)
	if fb.Status != model.StatusPending {
		fmt.Fprintf(&b, "Selected: %s\n", fb.SelectedLabel)
	}
	fmt.Fprintf(&b, "Correct answer: %s. %s\n", fb.CorrectLabel, fb.CorrectOption)
	fmt.Fprintf(&b, "Explanation: %s", fb.Explanation)
	if points := model.SplitKnowledge(fb.KnowledgeSummary); len(points) > 0 {
		b.WriteString("\nKey points:")
		for _, p := range points {
			b.WriteString("\n  • " + p)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// SkipTool removes a session.
type SkipTool struct {
	svc *service.QuizService
}

// NewSkipTool creates the skip_quiz tool.
func NewSkipTool(svc *service.QuizService) *SkipTool {
	return &SkipTool{svc: svc}
}

// Definition declares the skip_quiz schema.
func (t *SkipTool) Definition() mcp.Tool {
	return mcp.NewTool("skip_quiz",
		mcp.WithDescription("Discard a quiz session without grading it."),
		mcp.WithString("sessionId", mcp.Required(),
			mcp.Description("Session id returned by generate_quiz.")),
	)
}

// Handle executes skip_quiz. Removal is idempotent: skipping an unknown or
// already-skipped session succeeds.
func (t *SkipTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in model.SessionIDRequest
	if err := req.BindArguments(&in); err != nil {
		return bindError(err), nil
	}
	if fields := validator.Check(&in); fields != nil {
		return validationError(validator.FormatFields(fields)), nil
	}

	t.svc.Skip(in.SessionID)
	return mcp.NewToolResultText("Quiz session discarded."), nil
}
