//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/quiz"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error // Results も一緒に作成
	CreateResult(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error
	FindAttemptsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error)
	Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.QuizStats, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error {
	logger := middleware.GetLogger(ctx)
	// Results は関連付けとして同じトランザクションで INSERT される
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Quiz attempt already exists for session",
				"user_id", attempt.UserID.String(),
				"session_id", attempt.SessionID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating quiz attempt in DB",
			"error", result.Error,
			"user_id", attempt.UserID.String(),
			"attempt_id", attempt.AttemptID.String(),
		)
		return fmt.Errorf("gormQuizRepository.CreateAttempt: %w", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) CreateResult(ctx context.Context, tx *gorm.DB, res *model.QuizResult) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(res)
	if result.Error != nil {
		logger.Error("Error creating quiz result in DB",
			"error", result.Error,
			"user_id", res.UserID.String(),
			"word_id", res.WordID.String(),
		)
		return fmt.Errorf("gormQuizRepository.CreateResult: %w", result.Error)
	}
	return nil
}

// FindAttemptsByUser は新しい順に limit 件返す。Results は出題順
func (r *gormQuizRepository) FindAttemptsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error) {
	logger := middleware.GetLogger(ctx)
	attempts := []*model.QuizAttempt{}
	result := db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("ended_at DESC").
		Limit(limit).
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding quiz attempts in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormQuizRepository.FindAttemptsByUser: %w", result.Error)
	}
	return attempts, nil
}

func (r *gormQuizRepository) Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.QuizStats, error) {
	logger := middleware.GetLogger(ctx)
	var row struct {
		Total   int64
		Correct int64
	}
	result := db.WithContext(ctx).Model(&model.QuizResult{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		logger.Error("Error aggregating quiz results in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormQuizRepository.Stats: %w", result.Error)
	}

	stats := &model.QuizStats{
		Total:     row.Total,
		Correct:   row.Correct,
		Incorrect: row.Total - row.Correct,
	}
	stats.Accuracy = quiz.Percentage(int(row.Correct), int(row.Total))
	return stats, nil
}
