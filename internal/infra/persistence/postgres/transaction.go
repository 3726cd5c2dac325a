package postgres

import (
	"context"

	"stampshop/internal/domain/repository"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute delegates to gorm, which rolls back on error or panic. Errors from
// fn come back untouched so callers can match repository sentinels.
func (m *transactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories binds repositories to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}
