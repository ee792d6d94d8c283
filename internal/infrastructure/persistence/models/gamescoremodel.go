package models

import "time"

// GameScoreModel records points earned in one vocabulary game round.
type GameScoreModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_score_user"`
	Kind      string `gorm:"not null;size:50"`
	Points    int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (GameScoreModel) TableName() string {
	return "game_scores"
}
