// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"kirana/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions keep handlers independent of the storage driver: the
// GORM-backed store and the flat-file store both satisfy them.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Each command handler invocation gets a fresh, isolated unit of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
