package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTxManager runs functions inside one database transaction. The
// transaction handle travels in the context, so repository calls made
// through the inner context join the same transaction and commit or roll
// back as a unit.
type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFor returns the transaction bound into ctx, or the repository's own
// handle when no transaction is running.
func dbFor(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}
