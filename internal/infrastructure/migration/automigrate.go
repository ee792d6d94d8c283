package migration

import (
	"wordnest/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the schema carries, in dependency
// order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OAuthAccountModel{},
		&models.OAuthStateModel{},
		&models.AuditLogModel{},
		&models.LessonModel{},
		&models.LessonProgressModel{},
		&models.QuizModel{},
		&models.QuizQuestionModel{},
		&models.QuizAttemptModel{},
		&models.GameScoreModel{},
	}
}
