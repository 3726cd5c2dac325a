package postgres

import (
	"context"

	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/repository"
	"stampshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists an order and its items. Callers wrap it in a transaction
// so both inserts land together.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isFriendlyIDCollision(err) {
			return repository.ErrDuplicateFriendlyID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(orderM.Items) > 0 {
		if err := db.Create(&orderM.Items).Error; err != nil {
			if isForeignKeyViolation(err) {
				return domainerrors.ErrOrderCreationFailed.WrapMessage("order items reference a missing order")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order and its items by internal id.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindOrderByFriendlyID retrieves an order and its items by friendly id.
func (repo *orderRepository) FindOrderByFriendlyID(ctx context.Context, friendlyID string) (*entity.Order, error) {
	return repo.findOne(ctx, "friendly_id = ?", friendlyID)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := withItems(repo.db.WithContext(ctx)).
		Where(query, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders returns every order with items, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := withItems(repo.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// GetOrderStats aggregates order count, pending count and revenue in one query.
func (repo *orderRepository) GetOrderStats(ctx context.Context) (*entity.OrderStats, error) {
	var row struct {
		Total   int64
		Pending int64
		Revenue decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS pending, COALESCE(SUM(total_price), 0) AS revenue",
			entity.OrderStatusPending.String()).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate order stats")
	}

	return &entity.OrderStats{
		Total:   row.Total,
		Pending: row.Pending,
		Revenue: row.Revenue,
	}, nil
}

// AttachPaymentSession records the processor session id.
func (repo *orderRepository) AttachPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_id":     sessionID,
			"payment_status": entity.PaymentStatusPending.String(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach payment session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkOrderPaid applies the paid transition once. The guard on payment_status
// makes redelivered webhooks a no-op.
func (repo *orderRepository) MarkOrderPaid(ctx context.Context, id uuid.UUID, paymentID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status <> ?", id, entity.PaymentStatusPaid.String()).
		Updates(map[string]any{
			"status":         entity.OrderStatusPaid.String(),
			"payment_status": entity.PaymentStatusPaid.String(),
			"payment_id":     paymentID,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected > 0, nil
}

// UpdatePaymentStatus sets the payment axis unless the order is already paid.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status <> ?", id, entity.PaymentStatusPaid.String()).
		Update("payment_status", status.String())
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}

	return result.RowsAffected > 0, nil
}

// UpdateOrderStatus sets the fulfillment axis and returns the updated order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindOrderByID(ctx, id)
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// toOrderDomain converts a GORM order model to a domain entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		FriendlyID:     data.FriendlyID,
		CustomerName:   data.CustomerName,
		CustomerEmail:  deref(data.CustomerEmail),
		CustomerPhone:  data.CustomerPhone,
		DeliveryMethod: entity.DeliveryMethod(data.DeliveryMethod),
		Address:        deref(data.Address),
		TotalPrice:     data.TotalPrice,
		Status:         entity.OrderStatus(data.Status),
		PaymentStatus:  entity.PaymentStatus(data.PaymentStatus),
		PaymentID:      deref(data.PaymentID),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Items:          make([]*entity.OrderItem, 0, len(data.Items)),
	}

	for i := range data.Items {
		item := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:      item.ID,
			OrderID: item.OrderID,
			StampConfiguration: entity.StampConfiguration{
				Shape:             entity.StampShape(item.Shape),
				Color:             entity.InkColor(item.Color),
				CompanyName:       deref(item.CompanyName),
				CompanyNameAr:     deref(item.CompanyNameAr),
				LicenseNumber:     deref(item.LicenseNumber),
				ShowLicenseNumber: item.ShowLicenseNumber,
				Emirate:           deref(item.Emirate),
				HasLogo:           item.HasLogo,
				TradeLicenseURL:   deref(item.TradeLicenseURL),
			},
			Price: item.Price,
		})
	}

	return order
}

// fromOrderDomain converts a domain order entity to a GORM model.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		FriendlyID:     data.FriendlyID,
		CustomerName:   data.CustomerName,
		CustomerEmail:  nullable(data.CustomerEmail),
		CustomerPhone:  data.CustomerPhone,
		DeliveryMethod: data.DeliveryMethod.String(),
		Address:        nullable(data.Address),
		TotalPrice:     data.TotalPrice,
		Status:         data.Status.String(),
		PaymentStatus:  data.PaymentStatus.String(),
		PaymentID:      nullable(data.PaymentID),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Items:          make([]model.OrderItemModel, 0, len(data.Items)),
	}

	for i, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:                item.ID,
			OrderID:           data.ID,
			Position:          i,
			Shape:             item.Shape.String(),
			Color:             item.Color.String(),
			CompanyName:       nullable(item.CompanyName),
			CompanyNameAr:     nullable(item.CompanyNameAr),
			LicenseNumber:     nullable(item.LicenseNumber),
			ShowLicenseNumber: item.ShowLicenseNumber,
			Emirate:           nullable(item.Emirate),
			HasLogo:           item.HasLogo,
			TradeLicenseURL:   nullable(item.TradeLicenseURL),
			Price:             item.Price,
			CreatedAt:         data.CreatedAt,
		})
	}

	return orderM
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
