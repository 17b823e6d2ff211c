//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	CreateWord(ctx context.Context, userID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, userID uuid.UUID) ([]*model.Word, error)
	UpdateWord(ctx context.Context, userID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
	}
}

func errWordNotFound() error {
	return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)
}

func errInternal(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
}

// CreateWord は新しい単語を登録する。重複は許可する
func (s *wordService) CreateWord(ctx context.Context, userID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	german := strings.TrimSpace(req.German)
	english := strings.TrimSpace(req.English)
	// ハンドラでも検証済みだが、サービス単体で呼ばれた場合に備える
	if german == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "german is a required field", "german", model.ErrInvalidInput)
	}
	if english == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "english is a required field", "english", model.ErrInvalidInput)
	}

	word := &model.Word{
		WordID:     uuid.New(),
		UserID:     userID,
		German:     german,
		English:    english,
		Article:    req.Article,
		Notes:      req.Notes,
		Difficulty: req.Difficulty,
	}
	if err := s.wordRepo.Create(ctx, s.db, word); err != nil {
		logger.Error("Failed to create word", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}

	logger.Info("Word created", "user_id", userID, "word_id", word.WordID)
	return word, nil
}

func (s *wordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, userID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errWordNotFound()
		}
		return nil, errInternal(err)
	}
	return word, nil
}

func (s *wordService) ListWords(ctx context.Context, userID uuid.UUID) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing words", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	return words, nil
}

// UpdateWord は指定されたフィールドだけを更新する。空のリクエストは現在の単語を返す
func (s *wordService) UpdateWord(ctx context.Context, userID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if req.German != nil && strings.TrimSpace(*req.German) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "german must not be blank", "german", model.ErrInvalidInput)
	}
	if req.English != nil && strings.TrimSpace(*req.English) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "english must not be blank", "english", model.ErrInvalidInput)
	}
	var updatedWord *model.Word

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認 (他人の単語も NotFound)
		if _, err := s.wordRepo.FindByID(ctx, tx, userID, wordID); err != nil {
			return err
		}

		// 2. 更新内容の準備
		updates := make(map[string]interface{})
		if req.German != nil {
			updates["german"] = strings.TrimSpace(*req.German)
		}
		if req.English != nil {
			updates["english"] = strings.TrimSpace(*req.English)
		}
		if req.Article != nil {
			updates["article"] = *req.Article
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.Difficulty != nil {
			updates["difficulty"] = *req.Difficulty
		}

		// 3. 更新実行
		if len(updates) > 0 {
			if err := s.wordRepo.Update(ctx, tx, userID, wordID, updates); err != nil {
				return err
			}
		}

		word, err := s.wordRepo.FindByID(ctx, tx, userID, wordID)
		if err != nil {
			return err
		}
		updatedWord = word
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errWordNotFound()
		}
		logger.Error("Transaction failed for UpdateWord", "error", err, "word_id", wordID)
		return nil, errInternal(err)
	}
	return updatedWord, nil
}

// DeleteWord は単語を物理削除する
func (s *wordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if err := s.wordRepo.Delete(ctx, s.db, userID, wordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errWordNotFound()
		}
		middleware.GetLogger(ctx).Error("Failed to delete word", "error", err, "word_id", wordID)
		return errInternal(err)
	}
	return nil
}
