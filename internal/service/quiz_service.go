//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/quiz"
	"vokabelbuch/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type QuizService interface {
	Start(ctx context.Context, userID uuid.UUID, count int) (*model.QuizSessionResponse, error)
	Current(ctx context.Context, userID uuid.UUID) (*model.QuizSessionResponse, error)
	Answer(ctx context.Context, userID uuid.UUID, answer string) (*model.AnswerQuizResponse, error)
	Next(ctx context.Context, userID uuid.UUID) (*model.NextQuizResponse, error)
	Restart(ctx context.Context, userID uuid.UUID, count int) (*model.QuizSessionResponse, error)
	Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizResultRequest) (*model.QuizResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error)
	Stats(ctx context.Context, userID uuid.UUID) (*model.QuizStats, error)
}

type quizService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	quizRepo repository.QuizRepository
	store    repository.SessionStore
	engine   *quiz.Engine
	maxCount int
}

// NewQuizService は maxCount を出題数の上限として使う (0 以下なら上限なし)
func NewQuizService(db *gorm.DB, wordRepo repository.WordRepository, quizRepo repository.QuizRepository, store repository.SessionStore, engine *quiz.Engine, maxCount int) QuizService {
	return &quizService{
		db:       db,
		wordRepo: wordRepo,
		quizRepo: quizRepo,
		store:    store,
		engine:   engine,
		maxCount: maxCount,
	}
}

// quizError はエンジンのエラーを AppError に変換する
func quizError(err error) error {
	switch {
	case errors.Is(err, quiz.ErrNoWords):
		return model.NewAppError("NO_WORDS", "no words available", "", model.ErrInvalidInput)
	case errors.Is(err, quiz.ErrEmptyAnswer):
		return model.NewAppError("VALIDATION_ERROR", "answer must not be empty", "answer", model.ErrInvalidInput)
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		return model.NewAppError("ALREADY_ANSWERED", "The current question has already been answered.", "", model.ErrConflict)
	case errors.Is(err, quiz.ErrNotAnswered):
		return model.NewAppError("NOT_ANSWERED", "Answer the current question before moving on.", "", model.ErrConflict)
	case errors.Is(err, quiz.ErrNotInProgress):
		return model.NewAppError("QUIZ_NOT_IN_PROGRESS", "The quiz is not in progress.", "", model.ErrConflict)
	default:
		return errInternal(err)
	}
}

func errNoSession() error {
	return model.NewAppError("QUIZ_NOT_STARTED", "No quiz session in progress.", "", model.ErrNotFound)
}

// loadSession は保存済みのセッションを取り出す
func (s *quizService) loadSession(ctx context.Context, userID uuid.UUID) (quiz.Session, error) {
	session, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return quiz.Session{}, errNoSession()
		}
		middleware.GetLogger(ctx).Error("Failed to load quiz session", "error", err, "user_id", userID)
		return quiz.Session{}, errInternal(err)
	}
	return session, nil
}

func (s *quizService) saveSession(ctx context.Context, session quiz.Session) error {
	if err := s.store.Save(ctx, session); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save quiz session", "error", err, "user_id", session.UserID)
		return errInternal(err)
	}
	return nil
}

// Start は単語を1回だけ読み込んで新しいセッションを作る。既存のセッションは置き換える
func (s *quizService) Start(ctx context.Context, userID uuid.UUID, count int) (*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if count < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "count must be 0 or greater", "count", model.ErrInvalidInput)
	}
	if count == 0 {
		count = s.engine.DefaultSize()
	}
	if s.maxCount > 0 && count > s.maxCount {
		count = s.maxCount
	}

	words, err := s.wordRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load words for quiz", "error", err)
		return nil, errInternal(err)
	}

	cards := make([]quiz.Card, 0, len(words))
	for _, w := range words {
		cards = append(cards, quiz.Card{WordID: w.WordID, German: w.German, English: w.English})
	}

	session, err := s.engine.Start(userID, cards, count)
	if err != nil {
		logger.Info("Quiz could not start", "reason", err)
		return nil, quizError(err)
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("Quiz started", "session_id", session.ID, "questions", session.Total())
	return model.NewQuizSessionResponse(session), nil
}

// Current はセッションが無ければ not_started を返す
func (s *quizService) Current(ctx context.Context, userID uuid.UUID) (*model.QuizSessionResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NotStartedQuizResponse(), nil
		}
		return nil, err
	}
	return model.NewQuizSessionResponse(session), nil
}

func (s *quizService) Answer(ctx context.Context, userID uuid.UUID, answer string) (*model.AnswerQuizResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, err := quiz.Apply(session, quiz.SubmitAnswer{Text: answer})
	if err != nil {
		return nil, quizError(err)
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}

	q := next.Questions[next.Current]
	middleware.GetLogger(ctx).Debug("Quiz answer recorded",
		"user_id", userID,
		"session_id", next.ID,
		"index", q.Index,
		"correct", *q.Correct,
	)
	return &model.AnswerQuizResponse{
		Correct:       *q.Correct,
		CorrectAnswer: q.CorrectAnswer,
		Session:       model.NewQuizSessionResponse(next),
	}, nil
}

// Next は次の問題へ進む。最後の問題の後は結果を保存してセッションを消す
func (s *quizService) Next(ctx context.Context, userID uuid.UUID) (*model.NextQuizResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, err := quiz.Apply(session, quiz.AdvanceQuestion{At: s.engine.Now()})
	if err != nil {
		return nil, quizError(err)
	}

	if next.Status != quiz.StatusCompleted {
		if err := s.saveSession(ctx, next); err != nil {
			return nil, err
		}
		return &model.NextQuizResponse{Session: model.NewQuizSessionResponse(next)}, nil
	}

	summary, err := quiz.Summarize(next)
	if err != nil {
		return nil, quizError(err)
	}
	// 保存に失敗した場合はセッションを残し、再度 next を呼べるようにする
	if err := s.persistAttempt(ctx, userID, summary); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		// 同じセッションの完了が並行して保存済み
		logger.Info("Quiz attempt already recorded", "session_id", summary.SessionID)
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		logger.Warn("Failed to delete completed quiz session", "error", err)
	}

	logger.Info("Quiz completed",
		"session_id", summary.SessionID,
		"score", summary.Score,
		"total", summary.Total,
		"percentage", summary.Percentage,
	)
	return &model.NextQuizResponse{
		Session: model.NewQuizSessionResponse(next),
		Summary: &summary,
	}, nil
}

// persistAttempt は試行と各問題の結果を1トランザクションで保存し、出題した単語の復習回数を増やす
func (s *quizService) persistAttempt(ctx context.Context, userID uuid.UUID, summary quiz.Summary) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", summary.SessionID)

	attemptID := uuid.New()
	attempt := &model.QuizAttempt{
		AttemptID:  attemptID,
		SessionID:  summary.SessionID,
		UserID:     userID,
		Score:      summary.Score,
		Total:      summary.Total,
		Percentage: summary.Percentage,
		StartedAt:  summary.StartedAt,
		EndedAt:    summary.EndedAt,
		DurationMs: summary.DurationMs,
		Results:    make([]model.QuizResult, 0, len(summary.Questions)),
	}
	wordIDs := make([]uuid.UUID, 0, len(summary.Questions))
	for _, q := range summary.Questions {
		position := q.Index
		prompt := q.Prompt
		correctAnswer := q.CorrectAnswer
		direction := string(q.Direction)
		attempt.Results = append(attempt.Results, model.QuizResult{
			ResultID:      uuid.New(),
			UserID:        userID,
			WordID:        q.WordID,
			AttemptID:     &attemptID,
			Position:      &position,
			Question:      &prompt,
			CorrectAnswer: &correctAnswer,
			UserAnswer:    q.UserAnswer,
			Direction:     &direction,
			Correct:       q.Correct != nil && *q.Correct,
			CreatedAt:     summary.EndedAt,
		})
		wordIDs = append(wordIDs, q.WordID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.quizRepo.CreateAttempt(ctx, tx, attempt); err != nil {
			return err
		}
		// セッション中に削除された単語は数に入らない
		updated, err := s.wordRepo.MarkReviewed(ctx, tx, userID, wordIDs, summary.EndedAt)
		if err != nil {
			return err
		}
		if updated < int64(len(wordIDs)) {
			logger.Info("Some quiz words no longer exist", "asked", len(wordIDs), "updated", updated)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return err
		}
		logger.Error("Failed to persist quiz attempt", "error", err)
		return errInternal(err)
	}
	return nil
}

// Restart は現在のセッションを破棄して新しく始める
func (s *quizService) Restart(ctx context.Context, userID uuid.UUID, count int) (*model.QuizSessionResponse, error) {
	if err := s.store.Delete(ctx, userID); err != nil {
		middleware.GetLogger(ctx).Error("Failed to discard quiz session", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	return s.Start(ctx, userID, count)
}

// Submit は単発の回答結果を記録する。単語は呼び出し元の所有でなければならない
func (s *quizService) Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizResultRequest) (*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", req.WordID)
	if req.Correct == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "correct is a required field", "correct", model.ErrInvalidInput)
	}

	now := s.engine.Now()
	result := &model.QuizResult{
		ResultID:  uuid.New(),
		UserID:    userID,
		WordID:    req.WordID,
		Correct:   *req.Correct,
		CreatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, userID, req.WordID); err != nil {
			return err
		}
		if err := s.quizRepo.CreateResult(ctx, tx, result); err != nil {
			return err
		}
		_, err := s.wordRepo.MarkReviewed(ctx, tx, userID, []uuid.UUID{req.WordID}, now)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errWordNotFound()
		}
		logger.Error("Failed to submit quiz result", "error", err)
		return nil, errInternal(err)
	}

	logger.Info("Quiz result submitted", "correct", result.Correct)
	return result, nil
}

// History は完了したクイズを新しい順に返す
func (s *quizService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	attempts, err := s.quizRepo.FindAttemptsByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load quiz history", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	return attempts, nil
}

func (s *quizService) Stats(ctx context.Context, userID uuid.UUID) (*model.QuizStats, error) {
	stats, err := s.quizRepo.Stats(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to aggregate quiz stats", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	return stats, nil
}
