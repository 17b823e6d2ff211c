//go:generate mockery --name SessionStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"sync"
	"time"

	"vokabelbuch/internal/model"
	"vokabelbuch/internal/quiz"

	"github.com/google/uuid"
)

// SessionStore はユーザーごとに進行中のクイズセッションを1つだけ保持する
type SessionStore interface {
	Get(ctx context.Context, userID uuid.UUID) (quiz.Session, error) // 無ければ model.ErrNotFound
	Save(ctx context.Context, session quiz.Session) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type memoryEntry struct {
	session   quiz.Session
	expiresAt time.Time
}

type memorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]memoryEntry
}

// NewMemorySessionStore はプロセス内のセッションストア。ttl <= 0 なら期限なし
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return newMemorySessionStore(ttl, time.Now)
}

func newMemorySessionStore(ttl time.Duration, now func() time.Time) *memorySessionStore {
	return &memorySessionStore{
		ttl:     ttl,
		now:     now,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (s *memorySessionStore) Get(_ context.Context, userID uuid.UUID) (quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return quiz.Session{}, model.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, userID)
		return quiz.Session{}, model.ErrNotFound
	}
	return e.session, nil
}

func (s *memorySessionStore) Save(_ context.Context, session quiz.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{session: session}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[session.UserID] = e
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}
