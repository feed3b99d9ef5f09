package utils

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/footycards/card-market/cardmarket/database"
	"github.com/uptrace/bun"
)

// TransactionOptions configures transaction behavior
type TransactionOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
	// Retry replays the whole function on serialization failure or deadlock.
	Retry bool
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error
}

// TransactionManager runs economic operations inside database transactions
type TransactionManager struct {
	db         *bun.DB
	maxElapsed time.Duration
}

func NewTransactionManager(db *bun.DB) *TransactionManager {
	return &TransactionManager{db: db, maxElapsed: RetryMaxElapsed}
}

// PackOpenTransactionOptions returns read committed isolation that replays
// the open on deadlock.
func PackOpenTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        DefaultTxTimeout,
		Retry:          true,
	}
}

// StandardTransactionOptions returns default transaction options
func StandardTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        DefaultTxTimeout,
	}
}

// SerializableTransactionOptions returns serializable isolation with retry for critical operations
func SerializableTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelSerializable,
		Timeout:        DefaultTxTimeout,
		Retry:          true,
	}
}

// WithTransaction executes fn within a transaction. fn may run more than once
// when opts.Retry is set, so it must not have effects outside tx.
func (tm *TransactionManager) WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	if opts == nil {
		opts = StandardTransactionOptions()
	}
	if !opts.Retry {
		return tm.runOnce(ctx, opts, fn)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = RetryInitialInterval
	b.MaxInterval = RetryMaxInterval
	b.MaxElapsedTime = tm.maxElapsed
	b.RandomizationFactor = 0.5

	attempt := 0
	operation := func() error {
		attempt++
		err := tm.runOnce(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if database.IsRetryable(err) {
			slog.Debug("Retrying transaction",
				slog.String("type", "db"),
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			return err
		}
		return backoff.Permanent(err)
	}

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}

func (tm *TransactionManager) runOnce(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := tm.db.BeginTx(timeoutCtx, &sql.TxOptions{
		Isolation: opts.IsolationLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

