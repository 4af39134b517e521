package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// BaseRepository provides common repository functionality
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
}

func NewBaseRepository(db *bun.DB, timeout time.Duration) *BaseRepository {
	return &BaseRepository{
		db:             db,
		defaultTimeout: timeout,
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

// WithTimeout creates a context with the default timeout
func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if br.defaultTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// HandleError wraps err in a RepositoryError. Empty results are not errors.
func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// SelectWithTimeout executes a select query with timeout and error handling
func (br *BaseRepository) SelectWithTimeout(ctx context.Context, operation, entity string, query func(context.Context) error) error {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.HandleError(operation, entity, query(timeoutCtx))
}

func (br *BaseRepository) GetDB() *bun.DB {
	return br.db
}

// IsRepositoryError checks if an error is a RepositoryError
func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
