package usecases

import (
	"context"

	"wordnest/internal/domain/user"
	"wordnest/internal/shared/biztime"
	"wordnest/internal/shared/logger"
)

// CleanupExpiredStatesJob purges abandoned OAuth states. Registered with
// the scheduler when the database-backed state store is in play.
type CleanupExpiredStatesJob struct {
	stateStore user.OAuthStateStore
	logger     logger.Interface
}

func NewCleanupExpiredStatesJob(stateStore user.OAuthStateStore, logger logger.Interface) *CleanupExpiredStatesJob {
	return &CleanupExpiredStatesJob{
		stateStore: stateStore,
		logger:     logger,
	}
}

func (j *CleanupExpiredStatesJob) Execute(ctx context.Context) (int, error) {
	removed, err := j.stateStore.DeleteExpired(ctx, biztime.NowUTC())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		j.logger.Debugw("purged expired oauth states", "count", removed)
	}
	return int(removed), nil
}
