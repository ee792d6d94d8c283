package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/constants"
	"wordnest/internal/shared/logger"
)

func newLinkageTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OAuthAccountModel{}, &models.AuditLogModel{}))
	return db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestWithinTxCommitsLinkageAndAuditTogether(t *testing.T) {
	db := newLinkageTestDB(t)
	oauthRepo := NewOAuthAccountRepository(db, logger.NewLogger())
	auditRepo := NewAuditLogRepository(db, logger.NewLogger())
	tx := NewGormTxManager(db)
	ctx := context.Background()

	account, err := user.NewOAuthAccount(7, constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := oauthRepo.Create(ctx, account); err != nil {
			return err
		}
		entry, err := audit.NewEntry(7, constants.AuditActionAccountLink, "oauth_account", account.ID, nil, nil)
		if err != nil {
			return err
		}
		return auditRepo.Insert(ctx, entry)
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &models.OAuthAccountModel{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.AuditLogModel{}))
}

func TestWithinTxRollsBackLinkageWhenAuditFails(t *testing.T) {
	db := newLinkageTestDB(t)
	oauthRepo := NewOAuthAccountRepository(db, logger.NewLogger())
	tx := NewGormTxManager(db)
	ctx := context.Background()

	account, err := user.NewOAuthAccount(7, constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)

	auditFailure := errors.New("audit store unavailable")
	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := oauthRepo.Create(ctx, account); err != nil {
			return err
		}
		return auditFailure
	})
	require.ErrorIs(t, err, auditFailure)

	// The linkage write above happened inside the transaction and must
	// have been undone with it.
	assert.EqualValues(t, 0, countRows(t, db, &models.OAuthAccountModel{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.AuditLogModel{}))
}

func TestRepositoriesOutsideTxUseOwnHandle(t *testing.T) {
	db := newLinkageTestDB(t)
	oauthRepo := NewOAuthAccountRepository(db, logger.NewLogger())
	ctx := context.Background()

	account, err := user.NewOAuthAccount(9, constants.ProviderGoogle, "goog-999", "nine@gmail.example")
	require.NoError(t, err)
	require.NoError(t, oauthRepo.Create(ctx, account))

	assert.EqualValues(t, 1, countRows(t, db, &models.OAuthAccountModel{}))
}
