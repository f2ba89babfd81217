package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside one database transaction. Bid placement's
// price swap plus bid upsert and settlement's per-auction unit both rely on it
// for their both-or-neither guarantee.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TxManager {
	return &TransactionManager{db: db}
}

func (tm *TransactionManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, "tx", tx)
		return fn(ctx)
	})
}

// GetTx returns the transaction carried by the context, falling back to the
// base connection for callers running outside a transaction.
func GetTx(ctx context.Context, db *gorm.DB) *gorm.DB {
	tx, ok := ctx.Value("tx").(*gorm.DB)
	if !ok {
		return db
	}
	return tx
}
