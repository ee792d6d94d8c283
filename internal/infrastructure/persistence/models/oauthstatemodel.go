package models

import "time"

// OAuthStateModel persists OAuth CSRF states when Redis is not available.
// ConsumedAt doubles as the single-use marker: the consume query flips it
// with a conditional update so concurrent redemptions cannot both win.
type OAuthStateModel struct {
	ID         uint   `gorm:"primarykey"`
	Value      string `gorm:"uniqueIndex;not null;size:64"`
	Provider   string `gorm:"not null;size:50"`
	Mode       string `gorm:"not null;size:20"`
	UserID     uint
	Redirect   string `gorm:"size:500"`
	CreatedAt  time.Time
	ExpiresAt  time.Time `gorm:"not null;index"`
	ConsumedAt *time.Time
}

// TableName specifies the table name for GORM
func (OAuthStateModel) TableName() string {
	return "oauth_states"
}
