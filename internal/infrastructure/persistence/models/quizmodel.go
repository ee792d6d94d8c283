package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizModel represents the database persistence model for quizzes.
type QuizModel struct {
	ID        uint   `gorm:"primarykey"`
	LessonID  uint   `gorm:"not null;uniqueIndex"`
	Title     string `gorm:"not null;size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Questions []QuizQuestionModel `gorm:"foreignKey:QuizID"`
}

// TableName specifies the table name for GORM
func (QuizModel) TableName() string {
	return "quizzes"
}

// QuizQuestionModel is one multiple-choice question. Choices are stored as
// a JSON array of strings.
type QuizQuestionModel struct {
	ID          uint   `gorm:"primarykey"`
	QuizID      uint   `gorm:"not null;index"`
	Prompt      string `gorm:"not null;size:500"`
	Choices     datatypes.JSON
	AnswerIndex int `gorm:"not null"`
	Position    int `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

// QuizAttemptModel records a graded submission.
type QuizAttemptModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;index:idx_attempt_user"`
	QuizID    uint `gorm:"not null;index:idx_attempt_quiz"`
	Score     int  `gorm:"not null"`
	Total     int  `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
