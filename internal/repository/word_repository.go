//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error
	MarkReviewed(ctx context.Context, tx *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID, at time.Time) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"user_id", word.UserID.String(),
			"german", word.German,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByID は所有者の単語だけを返す。他人の単語は ErrNotFound
func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	words := []*model.Word{}
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByUser: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("user_id = ? AND word_id = ?", userID, wordID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は物理削除
func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MarkReviewed は review_count を 1 増やし last_reviewed_at を更新する。
// 既に削除された単語は対象外。更新件数を返す
func (r *gormWordRepository) MarkReviewed(ctx context.Context, tx *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID, at time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(wordIDs) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).
		Where("user_id = ? AND word_id IN ?", userID, wordIDs).
		Updates(map[string]interface{}{
			"review_count":     gorm.Expr("review_count + ?", 1),
			"last_reviewed_at": at,
		})
	if result.Error != nil {
		logger.Error("Error marking words reviewed in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_count", len(wordIDs),
		)
		return 0, fmt.Errorf("gormWordRepository.MarkReviewed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
