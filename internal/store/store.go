package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrHookNotFound is returned when no hook matches the asset and uid.
var ErrHookNotFound = errors.New("hook not found")

// Querier is the minimal interface needed from a pgx pool.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var errNilQuerier = errors.New("db querier is nil")
