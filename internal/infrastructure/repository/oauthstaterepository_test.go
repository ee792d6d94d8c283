package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/constants"
	"wordnest/internal/shared/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OAuthStateModel{}))
	return db
}

func newStateStore(t *testing.T) user.OAuthStateStore {
	t.Helper()
	return NewOAuthStateRepository(newTestDB(t), logger.NewLogger())
}

func TestOAuthStateConsumeIsSingleUse(t *testing.T) {
	store := newStateStore(t)
	ctx := context.Background()

	state, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeSignIn, 0, "/lessons", 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, state))

	consumed, err := store.Consume(ctx, state.Value)
	require.NoError(t, err)
	require.NotNil(t, consumed)
	assert.Equal(t, constants.StateModeSignIn, consumed.Mode)
	assert.Equal(t, "/lessons", consumed.Redirect)

	// Second redemption of the same value must miss.
	again, err := store.Consume(ctx, state.Value)
	require.NoError(t, err)
	assert.Nil(t, again)
}

// Concurrent redemptions of one state value must produce exactly one
// winner; everyone else sees the state as already spent.
func TestOAuthStateConsumeConcurrentDuplicates(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every goroutine on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)
	store := NewOAuthStateRepository(db, logger.NewLogger())
	ctx := context.Background()

	state, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeSignIn, 0, "/lessons", 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, state))

	const racers = 16
	results := make(chan *user.OAuthState, racers)
	errs := make(chan error, racers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			consumed, err := store.Consume(ctx, state.Value)
			results <- consumed
			errs <- err
		}()
	}
	start.Done()
	done.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	winners := 0
	for consumed := range results {
		if consumed != nil {
			winners++
			assert.Equal(t, constants.StateModeSignIn, consumed.Mode)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestOAuthStateConsumeUnknownValue(t *testing.T) {
	store := newStateStore(t)

	consumed, err := store.Consume(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.Nil(t, consumed)

	consumed, err = store.Consume(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, consumed)
}

func TestOAuthStateConsumeExpired(t *testing.T) {
	store := newStateStore(t)
	ctx := context.Background()

	state, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeSignIn, 0, "", time.Minute)
	require.NoError(t, err)
	state.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.Create(ctx, state))

	consumed, err := store.Consume(ctx, state.Value)
	require.NoError(t, err)
	assert.Nil(t, consumed)
}

func TestOAuthStateLinkModeKeepsUserID(t *testing.T) {
	store := newStateStore(t)
	ctx := context.Background()

	state, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeLink, 7, "", 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, state))

	consumed, err := store.Consume(ctx, state.Value)
	require.NoError(t, err)
	require.NotNil(t, consumed)
	assert.Equal(t, uint(7), consumed.UserID)
	assert.Equal(t, constants.StateModeLink, consumed.Mode)
}

func TestOAuthStateDeleteExpired(t *testing.T) {
	store := newStateStore(t)
	ctx := context.Background()

	fresh, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeSignIn, 0, "", 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, fresh))

	stale, err := user.NewOAuthState(constants.ProviderGoogle, constants.StateModeSignIn, 0, "", time.Minute)
	require.NoError(t, err)
	stale.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, store.Create(ctx, stale))

	removed, err := store.DeleteExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// The fresh state is still redeemable after the sweep.
	consumed, err := store.Consume(ctx, fresh.Value)
	require.NoError(t, err)
	assert.NotNil(t, consumed)
}
