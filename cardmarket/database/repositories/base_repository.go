package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/uptrace/bun"
)

// BaseRepository provides common repository functionality
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{
		db:             db,
		defaultTimeout: config.DefaultQueryTimeout,
	}
}

// RepositoryError represents a repository-level error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

// NotFoundError represents an entity not found error. It matches economy.ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     any
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", nfe.Entity, nfe.ID)
}

func (nfe *NotFoundError) Unwrap() error {
	return economy.ErrNotFound
}

// ConflictError represents a data conflict error. Err carries the domain sentinel.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
	Err    error
}

func (ce *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", ce.Entity, ce.Field, ce.Value)
}

func (ce *ConflictError) Unwrap() error {
	return ce.Err
}

// WithTimeout creates a context with the default timeout
func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// WithCustomTimeout creates a context with a custom timeout
func (br *BaseRepository) WithCustomTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// HandleErrorWithID standardizes error handling with specific ID
func (br *BaseRepository) HandleErrorWithID(operation, entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// HandleError standardizes error handling across repositories
func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	return br.HandleErrorWithID(operation, entity, "unknown", err)
}

// Transaction executes a function within a read-committed transaction
func (br *BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.db.RunInTx(timeoutCtx, nil, fn)
}

// idbOr falls back to the repository handle when no transaction is given.
func (br *BaseRepository) idbOr(idb bun.IDB) bun.IDB {
	if idb == nil {
		return br.db
	}
	return idb
}

// Page converts a 1-based page number into an offset.
func Page(page, limit int) (offset, size int) {
	if limit <= 0 {
		limit = config.DefaultPageSize
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}
