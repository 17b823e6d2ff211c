// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 冠詞 (文法上の性)
const (
	ArticleDer = "DER"
	ArticleDie = "DIE"
	ArticleDas = "DAS"
)

// 難易度
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Word はドイツ語と英語の単語ペアを表します
type Word struct {
	WordID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"word_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	German         string     `gorm:"not null" json:"german"`
	English        string     `gorm:"not null" json:"english"`
	Article        *string    `gorm:"type:varchar(3)" json:"article,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Difficulty     *string    `gorm:"type:varchar(6)" json:"difficulty,omitempty"`
	ReviewCount    int        `gorm:"not null;default:0" json:"review_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	German     string  `json:"german" validate:"required,notblank"`
	English    string  `json:"english" validate:"required,notblank"`
	Article    *string `json:"article,omitempty" validate:"omitempty,oneof=DER DIE DAS"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	German     *string `json:"german,omitempty" validate:"omitempty,notblank"`
	English    *string `json:"english,omitempty" validate:"omitempty,notblank"`
	Article    *string `json:"article,omitempty" validate:"omitempty,oneof=DER DIE DAS"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
}

func (r *PatchWordRequest) IsEmpty() bool {
	return r.German == nil && r.English == nil && r.Article == nil && r.Notes == nil && r.Difficulty == nil
}
