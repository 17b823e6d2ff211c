// internal/model/quiz.go
package model

import (
	"bytes"
	"encoding/json"
	"time"

	"vokabelbuch/internal/quiz"

	"github.com/google/uuid"
)

// QuizResult は1問分の回答結果。作成後は変更しない
type QuizResult struct {
	ResultID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"result_id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	WordID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"word_id"`
	AttemptID     *uuid.UUID `gorm:"type:uuid;index" json:"attempt_id,omitempty"`
	Position      *int       `json:"position,omitempty"`
	Question      *string    `json:"question,omitempty"`
	CorrectAnswer *string    `json:"correct_answer,omitempty"`
	UserAnswer    *string    `json:"user_answer,omitempty"`
	Direction     *string    `gorm:"type:varchar(20)" json:"direction,omitempty"`
	Correct       bool       `gorm:"not null" json:"correct"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// QuizAttempt は完了したクイズセッションの記録
type QuizAttempt struct {
	AttemptID  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	SessionID  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"` // 1セッションにつき1件
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	Score      int          `gorm:"not null" json:"score"`
	Total      int          `gorm:"not null" json:"total"`
	Percentage int          `gorm:"not null" json:"percentage"`
	StartedAt  time.Time    `gorm:"not null" json:"started_at"`
	EndedAt    time.Time    `gorm:"not null;index" json:"ended_at"`
	DurationMs int64        `gorm:"not null" json:"duration_ms"`
	Results    []QuizResult `gorm:"foreignKey:AttemptID;references:AttemptID" json:"results"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizStats は回答結果の集計
type QuizStats struct {
	Total     int64 `json:"total"`
	Correct   int64 `json:"correct"`
	Incorrect int64 `json:"incorrect"`
	Accuracy  int   `json:"accuracy"`
}

// StartQuizRequest の count は省略可能 (0 ならデフォルト)
type StartQuizRequest struct {
	Count int `json:"count" validate:"gte=0"`
}

type AnswerQuizRequest struct {
	Answer string `json:"answer" validate:"required,notblank"`
}

// SubmitQuizResultRequest は単発の回答結果送信リクエスト
type SubmitQuizResultRequest struct {
	WordID  uuid.UUID `json:"wordId" validate:"required"`
	Correct *bool     `json:"correct" validate:"required"`
}

// UnmarshalJSON は wordId に加えて word_id も受け付ける。両方あれば wordId を優先
func (r *SubmitQuizResultRequest) UnmarshalJSON(data []byte) error {
	var body struct {
		WordID      *uuid.UUID `json:"wordId"`
		SnakeWordID *uuid.UUID `json:"word_id"`
		Correct     *bool      `json:"correct"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return err
	}

	*r = SubmitQuizResultRequest{Correct: body.Correct}
	switch {
	case body.WordID != nil:
		r.WordID = *body.WordID
	case body.SnakeWordID != nil:
		r.WordID = *body.SnakeWordID
	}
	return nil
}

// QuizQuestionView は未回答の問題の正解を伏せた表示用の問題
type QuizQuestionView struct {
	Index         int            `json:"index"`
	WordID        uuid.UUID      `json:"word_id"`
	Prompt        string         `json:"prompt"`
	Direction     quiz.Direction `json:"direction"`
	CorrectAnswer *string        `json:"correct_answer,omitempty"`
	UserAnswer    *string        `json:"user_answer,omitempty"`
	Correct       *bool          `json:"correct,omitempty"`
}

type QuizSessionResponse struct {
	SessionID   *uuid.UUID         `json:"session_id,omitempty"`
	Status      quiz.Status        `json:"status"`
	Total       int                `json:"total"`
	Current     int                `json:"current"`
	Answered    int                `json:"answered"`
	Score       int                `json:"score"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Questions   []QuizQuestionView `json:"questions"`
}

// NewQuizSessionResponse はセッションを表示用に変換する
func NewQuizSessionResponse(s quiz.Session) *QuizSessionResponse {
	id := s.ID
	started := s.StartedAt
	resp := &QuizSessionResponse{
		SessionID:   &id,
		Status:      s.Status,
		Total:       s.Total(),
		Current:     s.Current,
		Answered:    s.Answered(),
		Score:       s.Score,
		StartedAt:   &started,
		CompletedAt: s.CompletedAt,
		Questions:   make([]QuizQuestionView, len(s.Questions)),
	}
	for i, q := range s.Questions {
		v := QuizQuestionView{
			Index:      q.Index,
			WordID:     q.WordID,
			Prompt:     q.Prompt,
			Direction:  q.Direction,
			UserAnswer: q.UserAnswer,
			Correct:    q.Correct,
		}
		if q.Answered() {
			answer := q.CorrectAnswer
			v.CorrectAnswer = &answer
		}
		resp.Questions[i] = v
	}
	return resp
}

// NotStartedQuizResponse はセッションが無いときの応答
func NotStartedQuizResponse() *QuizSessionResponse {
	return &QuizSessionResponse{
		Status:    quiz.StatusNotStarted,
		Questions: []QuizQuestionView{},
	}
}

type AnswerQuizResponse struct {
	Correct       bool                 `json:"correct"`
	CorrectAnswer string               `json:"correct_answer"`
	Session       *QuizSessionResponse `json:"session"`
}

type NextQuizResponse struct {
	Session *QuizSessionResponse `json:"session"`
	Summary *quiz.Summary        `json:"summary,omitempty"`
}
