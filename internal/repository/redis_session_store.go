package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/quiz"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "quiz:session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore はセッションを JSON で Redis に保存する
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func sessionKey(userID uuid.UUID) string {
	return sessionKeyPrefix + userID.String()
}

func (s *redisSessionStore) Get(ctx context.Context, userID uuid.UUID) (quiz.Session, error) {
	logger := middleware.GetLogger(ctx)
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return quiz.Session{}, model.ErrNotFound
	}
	if err != nil {
		logger.Error("Error reading quiz session from redis", "error", err, "user_id", userID.String())
		return quiz.Session{}, fmt.Errorf("redisSessionStore.Get: %w", err)
	}

	var session quiz.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// 壊れたデータはセッション無しとして扱う
		logger.Warn("Discarding unreadable quiz session", "error", err, "user_id", userID.String())
		_ = s.client.Del(ctx, sessionKey(userID)).Err()
		return quiz.Session{}, model.ErrNotFound
	}
	return session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session quiz.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redisSessionStore.Save: %w", err)
	}
	// ttl 0 は期限なし
	if err := s.client.Set(ctx, sessionKey(session.UserID), data, s.ttl).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Error writing quiz session to redis", "error", err, "user_id", session.UserID.String())
		return fmt.Errorf("redisSessionStore.Save: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Error deleting quiz session from redis", "error", err, "user_id", userID.String())
		return fmt.Errorf("redisSessionStore.Delete: %w", err)
	}
	return nil
}
