package models

import "time"

// LessonModel represents the database persistence model for lessons.
type LessonModel struct {
	ID        uint   `gorm:"primarykey"`
	Slug      string `gorm:"uniqueIndex;not null;size:100"`
	Title     string `gorm:"not null;size:200"`
	Language  string `gorm:"not null;size:20"`
	Body      string `gorm:"type:text"`
	Position  int    `gorm:"not null;default:0;index"`
	Published bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (LessonModel) TableName() string {
	return "lessons"
}

// LessonProgressModel records a student's completion of a lesson. One row
// per (user, lesson); re-completion keeps the original row.
type LessonProgressModel struct {
	ID          uint `gorm:"primarykey"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_user_lesson"`
	LessonID    uint `gorm:"not null;uniqueIndex:idx_user_lesson"`
	CompletedAt time.Time
}

// TableName specifies the table name for GORM
func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}
