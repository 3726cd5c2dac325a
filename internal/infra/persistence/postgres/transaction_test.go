package postgres

import (
	"context"
	"regexp"
	"testing"

	"stampshop/internal/domain/entity"
	"stampshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	order := func() *entity.Order {
		return &entity.Order{
			ID:         uuid.New(),
			FriendlyID: "SS-AB12CD",
			Items:      []*entity.OrderItem{{ID: uuid.New()}},
		}
	}

	t.Run("commits order and items together", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "order_items"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
			return repos.NewOrderRepository().CreateOrder(context.Background(), order())
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and keeps the sentinel", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_orders_friendly_id"})
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
			return repos.NewOrderRepository().CreateOrder(context.Background(), order())
		})

		assert.ErrorIs(t, err, repository.ErrDuplicateFriendlyID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
