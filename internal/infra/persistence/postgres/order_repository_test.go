package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"stampshop/internal/domain/entity"
	"stampshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var orderColumns = []string{
	"id", "friendly_id", "customer_name", "customer_email", "customer_phone",
	"delivery_method", "address", "total_price", "status", "payment_status",
	"payment_id", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "order_id", "position", "shape", "color", "company_name", "company_name_ar",
	"license_number", "show_license_number", "emirate", "has_logo", "trade_license_url",
	"price", "created_at",
}

func TestOrderRepository_FindOrderByFriendlyID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	orderID := uuid.New()
	itemID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE friendly_id = \$1`).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			orderID.String(), "SS-AB12CD", "Jane", nil, "+971501234567",
			"PICKUP", nil, "198.00", "PENDING", "pending", nil, now, now,
		))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"."order_id" = \$1 ORDER BY position ASC`).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
			itemID.String(), orderID.String(), 0, "round", "blue", "Acme LLC", nil,
			nil, false, "Dubai", true, nil, "198.00", now,
		))

	order, err := repo.FindOrderByFriendlyID(context.Background(), "SS-AB12CD")
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.DeliveryMethodPickup, order.DeliveryMethod)
	assert.Empty(t, order.CustomerEmail)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(198)))
	require.Len(t, order.Items, 1)
	assert.Equal(t, entity.ShapeRound, order.Items[0].Shape)
	assert.Equal(t, "Acme LLC", order.Items[0].CompanyName)
	assert.True(t, order.Items[0].HasLogo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindOrderByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	order, err := repo.FindOrderByID(context.Background(), uuid.New())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	order := &entity.Order{
		ID:             uuid.New(),
		FriendlyID:     "SS-AB12CD",
		CustomerName:   "Jane",
		CustomerPhone:  "+971501234567",
		DeliveryMethod: entity.DeliveryMethodPickup,
		TotalPrice:     decimal.NewFromInt(149),
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Items: []*entity.OrderItem{{
			ID:                 uuid.New(),
			StampConfiguration: entity.StampConfiguration{Shape: entity.ShapeSquare, Color: entity.ColorBlack, CompanyName: "Acme"},
			Price:              decimal.NewFromInt(149),
		}},
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.False(t, order.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrder_DuplicateFriendlyID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_orders_friendly_id"})

	err := repo.CreateOrder(context.Background(), &entity.Order{
		ID:         uuid.New(),
		FriendlyID: "SS-AB12CD",
		Items:      []*entity.OrderItem{{ID: uuid.New()}},
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateFriendlyID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_MarkOrderPaid(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		want         bool
	}{
		{name: "first delivery transitions", rowsAffected: 1, want: true},
		{name: "redelivery is a no-op", rowsAffected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewOrderRepository(db)

			mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$\d+ AND payment_status <> \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			transitioned, err := repo.MarkOrderPaid(context.Background(), uuid.New(), "cs_test_123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, transitioned)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_UpdateOrderStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET "status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	order, err := repo.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatusDelivered)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetOrderStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total, COUNT\(\*\) FILTER \(WHERE status = \$1\) AS pending`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "revenue"}).AddRow(3, 1, "545.00"))

	stats, err := repo.GetOrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(545)))
	require.NoError(t, mock.ExpectationsWereMet())
}
