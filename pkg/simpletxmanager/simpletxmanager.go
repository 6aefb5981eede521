package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/ysiverio/reservasBarberia/pkg/dbmetrics"
	"github.com/ysiverio/reservasBarberia/pkg/txmanager"
)

// TransactionManager adapts a plain *sql.DB (no metrics wrapper) to the
// txmanager. Used when metrics are disabled.
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

type plainBeginner struct {
	db *sql.DB
}

func (b plainBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager creates a manager over a raw *sql.DB.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{inner: txmanager.NewTransactionManager(plainBeginner{db: db})}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.Do(ctx, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoReadOnly(ctx, fn)
}
