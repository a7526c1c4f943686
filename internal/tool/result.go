// Package tool exposes the MCP tool surface. Every tool is a struct with a
// Definition and a Handle; all failures are converted here into error
// envelopes, never surfaced as protocol-level faults.
package tool

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quizkit/quiznote/internal/launcher"
	"github.com/quizkit/quiznote/internal/response"
	"github.com/quizkit/quiznote/internal/service"
	"github.com/quizkit/quiznote/internal/session"
)

// errResult maps a downstream error onto the textual error envelope using
// the shared error-code vocabulary.
func errResult(err error) *mcp.CallToolResult {
	code := response.ErrInternal
	switch {
	case errors.Is(err, session.ErrNotFound):
		code = response.ErrSessionNotFound
	case errors.Is(err, session.ErrAlreadyAnswered):
		code = response.ErrAlreadyAnswered
	case errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, service.ErrCorrectIndexOutOfRange):
		code = response.ErrValidation
	case errors.Is(err, service.ErrNotebookNotConfigured):
		code = response.ErrNotConfigured
	case errors.Is(err, launcher.ErrRenderFailed):
		code = response.ErrRenderFailed
	}
	return codeResult(code, err.Error())
}

// codeResult builds an error envelope for a known code with optional detail.
func codeResult(code response.ErrCode, detail string) *mcp.CallToolResult {
	text := fmt.Sprintf("%s: %s", code, response.GetMessage(code))
	if detail != "" {
		text += "\n" + detail
	}
	return mcp.NewToolResultError(text)
}

// bindError is the envelope for payloads that fail to decode at all.
func bindError(err error) *mcp.CallToolResult {
	return codeResult(response.ErrInvalidPayload, err.Error())
}

// validationError is the envelope for payloads with field-level failures.
func validationError(fieldSummary string) *mcp.CallToolResult {
	return codeResult(response.ErrValidation, fieldSummary)
}
