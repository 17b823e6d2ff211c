package quiz

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source supplies uniform random integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type Engine struct {
	rng  Source
	now  func() time.Time
	size int
}

type Option func(*Engine)

// WithSource replaces the random source, mostly for tests.
func WithSource(src Source) Option {
	return func(e *Engine) { e.rng = src }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine that asks size questions per session by default.
func NewEngine(size int, opts ...Option) *Engine {
	e := &Engine{
		rng:  globalSource{},
		now:  time.Now,
		size: size,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) DefaultSize() int {
	return e.size
}

func (e *Engine) Now() time.Time {
	return e.now()
}

// Start snapshots cards into a new in-progress session with at most n
// questions. n <= 0 uses the engine default.
func (e *Engine) Start(userID uuid.UUID, cards []Card, n int) (Session, error) {
	if len(cards) == 0 {
		return Session{}, ErrNoWords
	}
	if n <= 0 {
		n = e.size
	}
	if n <= 0 {
		return Session{}, ErrInvalidQuestions
	}

	picked := Shuffle(e.rng, cards)
	if n < len(picked) {
		picked = picked[:n]
	}

	questions := make([]Question, len(picked))
	for i, c := range picked {
		q := Question{Index: i, WordID: c.WordID}
		if e.rng.IntN(2) == 0 {
			q.Direction = GermanToEnglish
			q.Prompt, q.CorrectAnswer = c.German, c.English
		} else {
			q.Direction = EnglishToGerman
			q.Prompt, q.CorrectAnswer = c.English, c.German
		}
		questions[i] = q
	}

	return Session{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    StatusInProgress,
		Questions: questions,
		StartedAt: e.now(),
	}, nil
}

// Shuffle returns a Fisher-Yates permutation of cards. The input is left untouched.
func Shuffle(rng Source, cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NormalizeAnswer trims surrounding whitespace and folds case.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsEmptyAnswer(s string) bool {
	return strings.TrimSpace(s) == ""
}

func CheckAnswer(given, correct string) bool {
	if IsEmptyAnswer(given) || IsEmptyAnswer(correct) {
		return false
	}
	return NormalizeAnswer(given) == NormalizeAnswer(correct)
}

// Percentage is round(score/total*100), 0 for an empty quiz.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
