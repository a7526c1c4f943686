package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the timestamp format embedded in quiz payloads. It is kept
// stable because rendered artifacts carry it verbatim and must stay
// re-parseable across versions.
const TimeLayout = "2006-01-02 15:04:05"

// Quiz is a single multiple-choice question. Immutable once created.
type Quiz struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	// KnowledgeSummary is a pipe-separated list of key points.
	KnowledgeSummary string `json:"knowledgeSummary,omitempty"`
	Category         string `json:"category,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// CreatedTime parses the quiz creation timestamp, falling back to now for
// payloads with a missing or malformed timestamp.
func (q Quiz) CreatedTime() time.Time {
	t, err := time.Parse(TimeLayout, q.CreatedAt)
	if err != nil {
		return time.Now()
	}
	return t
}

// SplitKnowledge splits a pipe-separated knowledge summary into trimmed,
// non-empty points.
func SplitKnowledge(summary string) []string {
	var points []string
	for _, p := range strings.Split(summary, "|") {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	return points
}

// OptionLabel returns the canonical letter label for an option index
// (0 → "A", 1 → "B", ...). Indexes beyond Z fall back to the number itself.
func OptionLabel(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return fmt.Sprintf("#%d", index+1)
}
