package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the order store.
// Client code must explicitly manage the transaction lifecycle.
//
// The backing store may have no native transaction support (the flat-file
// adapter); implementations then serialize all mutating work behind a single
// writer and make Commit an atomic whole-of-state replace. Identifier
// generation and the subsequent create must happen inside one unit of work so
// two concurrent submissions cannot both pass the uniqueness check against a
// stale snapshot.
type UnitOfWork interface {
	// Begin starts the transaction (or acquires the writer boundary).
	Begin(ctx context.Context) error

	// Commit makes all changes durable.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
