// Package session tracks the answer state of generated quizzes for the
// lifetime of the process. A session is created when a quiz is generated,
// mutated exactly once by answer submission, and removed when skipped or
// reaped.
package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/model"
)

// Sentinel errors for registry operations.
var (
	ErrNotFound        = errors.New("session not found")
	ErrAlreadyAnswered = errors.New("session already answered")
	ErrIndexOutOfRange = errors.New("selected index out of range")
)

// entry is the mutable answer-tracking wrapper around one quiz.
type entry struct {
	quiz          model.Quiz
	answered      bool
	selectedIndex int
	createdAt     time.Time
}

// Summary is a read-only view of one live session, used by the front-end API.
type Summary struct {
	SessionID string              `json:"session_id"`
	Question  string              `json:"question"`
	Category  string              `json:"category,omitempty"`
	Status    model.SessionStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// Registry is the in-memory session store. The mutex exists because the
// optional TTL reaper runs on its own goroutine; tool calls themselves
// arrive one at a time.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	log      zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		log:      log.With().Str("component", "session_registry").Logger(),
	}
}

// Create stores a fresh unanswered session for quiz and returns its id.
func (r *Registry) Create(quiz model.Quiz) string {
	id := uuid.New().String()

	r.mu.Lock()
	r.sessions[id] = &entry{quiz: quiz, createdAt: time.Now()}
	r.mu.Unlock()

	r.log.Debug().Str("session_id", id).Msg("session created")
	return id
}

// Submit grades the session against selectedIndex. The first submission is
// binding: a second call fails with ErrAlreadyAnswered and leaves the
// recorded answer untouched.
func (r *Registry) Submit(id string, selectedIndex int) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if e.answered {
		return nil, ErrAlreadyAnswered
	}
	if selectedIndex < 0 || selectedIndex >= len(e.quiz.Options) {
		return nil, ErrIndexOutOfRange
	}

	e.answered = true
	e.selectedIndex = selectedIndex

	correct := selectedIndex == e.quiz.CorrectIndex
	fb := &model.Feedback{
		Correct:       correct,
		SelectedLabel: model.OptionLabel(selectedIndex),
		CorrectLabel:  model.OptionLabel(e.quiz.CorrectIndex),
		CorrectOption: e.quiz.Options[e.quiz.CorrectIndex],
		Explanation:   e.quiz.Explanation,
	}
	if !correct {
		fb.KnowledgeSummary = e.quiz.KnowledgeSummary
	}
	return fb, nil
}

// Feedback returns the session's current state independent of whether an
// answer has been submitted. Unanswered sessions report StatusPending.
func (r *Registry) Feedback(id string) (*model.DetailedFeedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	fb := &model.DetailedFeedback{
		Question:         e.quiz.Question,
		Status:           model.StatusPending,
		CorrectLabel:     model.OptionLabel(e.quiz.CorrectIndex),
		CorrectOption:    e.quiz.Options[e.quiz.CorrectIndex],
		Explanation:      e.quiz.Explanation,
		KnowledgeSummary: e.quiz.KnowledgeSummary,
	}
	if e.answered {
		fb.SelectedLabel = model.OptionLabel(e.selectedIndex)
		if e.selectedIndex == e.quiz.CorrectIndex {
			fb.Status = model.StatusCorrect
		} else {
			fb.Status = model.StatusIncorrect
		}
	}
	return fb, nil
}

// Skip removes the session unconditionally. Removing an unknown id is a
// no-op.
func (r *Registry) Skip(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// List returns summaries of all live sessions, newest first.
func (r *Registry) List() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Summary, 0, len(r.sessions))
	for id, e := range r.sessions {
		s := Summary{
			SessionID: id,
			Question:  e.quiz.Question,
			Category:  e.quiz.Category,
			Status:    model.StatusPending,
			CreatedAt: e.createdAt,
		}
		if e.answered {
			if e.selectedIndex == e.quiz.CorrectIndex {
				s.Status = model.StatusCorrect
			} else {
				s.Status = model.StatusIncorrect
			}
		}
		out = append(out, s)
	}

	// Newest first; ties broken by id for determinism.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].SessionID < out[j].SessionID
	})
	return out
}

// ReapOlderThan removes sessions created before cutoff and returns how many
// were removed.
func (r *Registry) ReapOlderThan(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, e := range r.sessions {
		if e.createdAt.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
