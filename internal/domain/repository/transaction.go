package repository

import "context"

// TransactionManager runs a unit of work atomically. An order and its line
// items are written through it so a half-saved order never exists.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share the open transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
}
