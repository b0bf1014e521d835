// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for an in-flight transaction.
type txKey struct{}

// TransactionManager runs functions inside a database transaction. The
// authorization check and the mutation it guards share one transaction per
// request, closing the check-then-act gap.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction. A returned error rolls
// the transaction back; otherwise it commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Detach strips any in-flight transaction from ctx. Writes that must survive
// a rollback, such as denied-access log entries, go through a detached
// context so they commit independently.
func Detach(ctx context.Context) context.Context {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return context.WithValue(ctx, txKey{}, (*gorm.DB)(nil))
	}
	return ctx
}

// FromContext returns the transaction carried by ctx, falling back to the
// given handle. Repositories route every query through this so they join
// the request's transaction when one is open.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}
