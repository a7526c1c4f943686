package model

// GenerateQuizRequest is the payload for the generate_quiz tool.
// CorrectIndex bounds against Options are checked by the service.
type GenerateQuizRequest struct {
	Question         string   `json:"question" validate:"required,min=1,max=2000"`
	Options          []string `json:"options" validate:"required,min=2,max=8,dive,required"`
	CorrectIndex     int      `json:"correctIndex" validate:"min=0"`
	Explanation      string   `json:"explanation" validate:"required,max=5000"`
	KnowledgeSummary string   `json:"knowledgeSummary" validate:"omitempty,max=2000"`
	Category         string   `json:"category" validate:"omitempty,max=100"`
}

// GenerateResult is returned by quiz generation.
type GenerateResult struct {
	SessionID       string `json:"session_id"`
	ArtifactPath    string `json:"artifact_path"`
	AutoQuizEnabled bool   `json:"auto_quiz_enabled"`
}

// SubmitAnswerRequest is the payload for the submit_answer tool.
type SubmitAnswerRequest struct {
	SessionID     string `json:"sessionId" validate:"required"`
	SelectedIndex int    `json:"selectedIndex" validate:"min=0"`
}

// SessionIDRequest is the payload for tools addressing a session by id.
type SessionIDRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// SetPathRequest is the payload for the path-configuration tools.
type SetPathRequest struct {
	Path string `json:"path" validate:"required"`
}

// ToggleAutoQuizRequest is the payload for the toggle_auto_quiz tool.
type ToggleAutoQuizRequest struct {
	Enabled bool `json:"enabled"`
}

// NoteSection is one titled block of a notebook note.
type NoteSection struct {
	Heading string `json:"heading" validate:"required,max=200"`
	Body    string `json:"body" validate:"required"`
}

// NoteTable is an optional table in a notebook note.
type NoteTable struct {
	Headers []string   `json:"headers" validate:"required,min=1"`
	Rows    [][]string `json:"rows" validate:"required,min=1"`
}

// NoteChart is an optional bar chart in a notebook note.
type NoteChart struct {
	Title  string    `json:"title" validate:"omitempty,max=200"`
	Labels []string  `json:"labels" validate:"required,min=1"`
	Values []float64 `json:"values" validate:"required,min=1"`
}

// SaveNotePDFRequest is the payload for the save_notebook_note_pdf tool.
type SaveNotePDFRequest struct {
	Topic     string        `json:"topic" validate:"required,min=1,max=200"`
	Sections  []NoteSection `json:"sections" validate:"omitempty,dive"`
	KeyPoints []string      `json:"keyPoints" validate:"omitempty,dive,required"`
	Table     *NoteTable    `json:"table" validate:"omitempty"`
	Chart     *NoteChart    `json:"chart" validate:"omitempty"`
}
