// Package quiz holds the quiz session state machine. Every transition takes a
// Session value and returns a new one; the input is never modified.
package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Direction string

const (
	GermanToEnglish Direction = "german-to-english"
	EnglishToGerman Direction = "english-to-german"
)

var (
	ErrNoWords          = errors.New("no words available")
	ErrEmptyAnswer      = errors.New("answer must not be empty")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNotAnswered      = errors.New("current question has not been answered")
	ErrNotInProgress    = errors.New("quiz is not in progress")
	ErrNotCompleted     = errors.New("quiz is not completed")
	ErrUnknownAction    = errors.New("unknown quiz action")
	ErrInvalidQuestions = errors.New("question count must be positive")
)

// Card is one word pair the quiz can ask about.
type Card struct {
	WordID  uuid.UUID
	German  string
	English string
}

type Question struct {
	Index         int       `json:"index"`
	WordID        uuid.UUID `json:"word_id"`
	Prompt        string    `json:"prompt"`
	CorrectAnswer string    `json:"correct_answer"`
	Direction     Direction `json:"direction"`
	UserAnswer    *string   `json:"user_answer,omitempty"`
	Correct       *bool     `json:"correct,omitempty"`
}

func (q Question) Answered() bool {
	return q.UserAnswer != nil
}

type Session struct {
	ID          uuid.UUID  `json:"session_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Status      Status     `json:"status"`
	Questions   []Question `json:"questions"`
	Current     int        `json:"current"`
	Score       int        `json:"score"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s Session) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question the session is waiting on.
func (s Session) CurrentQuestion() (Question, bool) {
	if s.Status != StatusInProgress || s.Current < 0 || s.Current >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Current], true
}

func (s Session) Answered() int {
	n := 0
	for _, q := range s.Questions {
		if q.Answered() {
			n++
		}
	}
	return n
}

// clone copies the question slice so a transition can edit it freely.
func (s Session) clone() Session {
	out := s
	out.Questions = make([]Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	return out
}
