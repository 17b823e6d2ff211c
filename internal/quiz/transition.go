package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Action is an input to Apply.
type Action interface {
	isAction()
}

// SubmitAnswer answers the current question with raw user input.
type SubmitAnswer struct {
	Text string
}

// AdvanceQuestion moves past the answered current question. At is the time
// used as the completion stamp when no question is left.
type AdvanceQuestion struct {
	At time.Time
}

func (SubmitAnswer) isAction()    {}
func (AdvanceQuestion) isAction() {}

// Apply is the reducer over quiz sessions.
func Apply(s Session, a Action) (Session, error) {
	switch act := a.(type) {
	case SubmitAnswer:
		return Answer(s, act.Text)
	case AdvanceQuestion:
		return Advance(s, act.At)
	default:
		return s, ErrUnknownAction
	}
}

// Answer records raw as the answer to the current question.
func Answer(s Session, raw string) (Session, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, ErrNotInProgress
	}
	if IsEmptyAnswer(raw) {
		return s, ErrEmptyAnswer
	}
	if q.Answered() {
		return s, ErrAlreadyAnswered
	}

	correct := CheckAnswer(raw, q.CorrectAnswer)
	answer := raw
	q.UserAnswer = &answer
	q.Correct = &correct

	next := s.clone()
	next.Questions[s.Current] = q
	if correct {
		next.Score = s.Score + 1
	}
	return next, nil
}

// Advance moves to the next unanswered question in session order, or
// completes the session when there is none.
func Advance(s Session, at time.Time) (Session, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, ErrNotInProgress
	}
	if !q.Answered() {
		return s, ErrNotAnswered
	}

	next := s.clone()
	for i := s.Current + 1; i < len(s.Questions); i++ {
		if !s.Questions[i].Answered() {
			next.Current = i
			return next, nil
		}
	}

	completed := at
	next.Status = StatusCompleted
	next.Current = len(s.Questions)
	next.CompletedAt = &completed
	return next, nil
}

type Summary struct {
	SessionID  uuid.UUID  `json:"session_id"`
	Score      int        `json:"score"`
	Total      int        `json:"total"`
	Percentage int        `json:"percentage"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    time.Time  `json:"ended_at"`
	DurationMs int64      `json:"duration_ms"`
	Questions  []Question `json:"questions"`
}

// Summarize reports the outcome of a completed session.
func Summarize(s Session) (Summary, error) {
	if s.Status != StatusCompleted || s.CompletedAt == nil {
		return Summary{}, ErrNotCompleted
	}
	questions := make([]Question, len(s.Questions))
	copy(questions, s.Questions)
	return Summary{
		SessionID:  s.ID,
		Score:      s.Score,
		Total:      s.Total(),
		Percentage: Percentage(s.Score, s.Total()),
		StartedAt:  s.StartedAt,
		EndedAt:    *s.CompletedAt,
		DurationMs: s.CompletedAt.Sub(s.StartedAt).Milliseconds(),
		Questions:  questions,
	}, nil
}
