package model

// SessionStatus is the grading state of a quiz session.
type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusCorrect   SessionStatus = "correct"
	StatusIncorrect SessionStatus = "incorrect"
)

// Feedback is the result of submitting an answer.
type Feedback struct {
	Correct       bool   `json:"correct"`
	SelectedLabel string `json:"selected_label"`
	CorrectLabel  string `json:"correct_label"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
	// KnowledgeSummary is populated only for incorrect answers.
	KnowledgeSummary string `json:"knowledge_summary,omitempty"`
}

// DetailedFeedback is a read-only projection of a session's current state,
// valid whether or not an answer has been submitted.
type DetailedFeedback struct {
	Question         string        `json:"question"`
	Status           SessionStatus `json:"status"`
	SelectedLabel    string        `json:"selected_label,omitempty"`
	CorrectLabel     string        `json:"correct_label"`
	CorrectOption    string        `json:"correct_option"`
	Explanation      string        `json:"explanation"`
	KnowledgeSummary string        `json:"knowledge_summary,omitempty"`
}
