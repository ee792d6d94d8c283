package models

import "time"

// OAuthAccountModel represents the database persistence model for OAuth accounts.
type OAuthAccountModel struct {
	ID             uint       `gorm:"primarykey"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_user_provider"`
	Provider       string     `gorm:"not null;size:50;uniqueIndex:idx_user_provider;uniqueIndex:idx_provider_subject"`
	ProviderUserID string     `gorm:"not null;size:255;uniqueIndex:idx_provider_subject;column:provider_user_id"`
	ProviderEmail  string     `gorm:"size:255"`
	LastLoginAt    *time.Time
	LoginCount     uint `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (OAuthAccountModel) TableName() string {
	return "oauth_accounts"
}
