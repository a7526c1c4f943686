package response

// ErrCode is a typed error code enum for consistent error identification
// across the tool envelope and the HTTP API.
type ErrCode string

const (
	// ─── Sessions ──────────────────────────────────────────────────────
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"
	ErrAlreadyAnswered ErrCode = "ALREADY_ANSWERED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Configuration ─────────────────────────────────────────────────
	ErrInvalidPath   ErrCode = "INVALID_PATH"
	ErrNotConfigured ErrCode = "NOT_CONFIGURED"

	// ─── Artifacts ─────────────────────────────────────────────────────
	ErrFilesystem   ErrCode = "FILESYSTEM_ERROR"
	ErrRenderFailed ErrCode = "RENDER_FAILED"
	ErrNotFound     ErrCode = "NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrSessionNotFound:
		return "Quiz session not found. It may have been skipped or expired."
	case ErrAlreadyAnswered:
		return "This quiz has already been answered. The first answer is binding."
	case ErrValidation:
		return "Validation failed. Please check the input fields."
	case ErrInvalidPayload:
		return "The request payload could not be parsed."
	case ErrInvalidPath:
		return "The directory path is invalid or could not be created."
	case ErrNotConfigured:
		return "The notebook path is not configured. Set it first."
	case ErrFilesystem:
		return "Writing the artifact to disk failed."
	case ErrRenderFailed:
		return "The external renderer reported a failure."
	case ErrNotFound:
		return "Resource not found."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
