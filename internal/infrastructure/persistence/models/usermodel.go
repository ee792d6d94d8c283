package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                         uint    `gorm:"primarykey"`
	Email                      string  `gorm:"uniqueIndex;not null;size:255"`
	Name                       string  `gorm:"not null;size:100"`
	Role                       string  `gorm:"not null;default:student;size:20"`
	AvatarURL                  string  `gorm:"size:500"`
	PasswordHash               *string `gorm:"size:255"`
	EmailVerified              bool    `gorm:"default:false"`
	EmailVerificationToken     *string `gorm:"size:255;index:idx_email_verification_token"`
	EmailVerificationExpiresAt *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
