// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/pricing"
	"stampshop/internal/domain/repository"
	"stampshop/internal/infra/metrics"
	"stampshop/internal/usecase"
	"stampshop/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxFriendlyIDAttempts bounds retries after a friendly id collision.
const maxFriendlyIDAttempts = 3

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	validator     *validation.Validator
	metrics       *metrics.Metrics
	logger        *slog.Logger
	newFriendlyID func() (string, error)
	now           func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		validator:     validation.New(),
		metrics:       params.Metrics,
		logger:        params.Logger,
		newFriendlyID: entity.NewFriendlyID,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitOrder validates the payload, re-prices it and persists the order with its items.
func (srv *orderService) SubmitOrder(ctx context.Context, input *usecase.SubmitOrderInput) (*usecase.SubmitOrderOutput, error) {
	// validate what will be stored, so "   " cannot satisfy a required field
	input = trimmedInput(input)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	order, err := srv.buildOrder(input)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxFriendlyIDAttempts; attempt++ {
		friendlyID, err := srv.newFriendlyID()
		if err != nil {
			return nil, domainerrors.ErrOrderCreationFailed.WrapMessage(err.Error())
		}
		order.FriendlyID = friendlyID

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewOrderRepository().CreateOrder(ctx, order)
		})
		if err == nil {
			srv.metrics.OrderCreated()
			srv.log(ctx).Info("Order created",
				slog.String("order_id", order.ID.String()),
				slog.String("friendly_id", order.FriendlyID),
				slog.Int("items", len(order.Items)),
			)

			return &usecase.SubmitOrderOutput{OrderID: order.FriendlyID}, nil
		}

		if !errors.Is(err, repository.ErrDuplicateFriendlyID) {
			srv.log(ctx).Error("Order creation failed", slog.Any("error", err))

			return nil, errors.WithStack(err)
		}

		srv.log(ctx).Warn("Friendly id collision, retrying",
			slog.String("friendly_id", friendlyID),
			slog.Int("attempt", attempt),
		)
	}

	return nil, domainerrors.ErrOrderIDExhausted
}

// buildOrder recomputes every price through the pricing engine and rejects
// client prices that disagree.
func (srv *orderService) buildOrder(input *usecase.SubmitOrderInput) (*entity.Order, error) {
	orderID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	fields := domainerrors.FieldErrors{}
	items := make([]*entity.OrderItem, 0, len(input.Items))
	quotes := make([]pricing.Quote, 0, len(input.Items))

	for idx, in := range input.Items {
		quote := pricing.Calculate(in.HasLogo)
		if !in.Price.Equal(quote.TotalPrice) {
			fields.Add(fmt.Sprintf("items[%d].price", idx),
				fmt.Sprintf("Price must be %s", quote.TotalPrice.StringFixed(2)))
		}
		quotes = append(quotes, quote)

		items = append(items, &entity.OrderItem{
			ID:      uuid.New(),
			OrderID: orderID,
			StampConfiguration: entity.StampConfiguration{
				Shape:             entity.StampShape(in.Shape),
				Color:             entity.InkColor(in.Color),
				CompanyName:       in.CompanyName,
				CompanyNameAr:     in.CompanyNameAr,
				LicenseNumber:     in.LicenseNumber,
				ShowLicenseNumber: in.ShowLicenseNumber,
				Emirate:           in.Emirate,
				HasLogo:           in.HasLogo,
				TradeLicenseURL:   in.TradeLicenseURL,
			},
			Price: quote.TotalPrice,
		})
	}

	total := pricing.Sum(quotes...)
	if !input.TotalPrice.Equal(total) {
		fields.Add("totalPrice", fmt.Sprintf("Total must be %s", total.StringFixed(2)))
	}

	if !fields.Empty() {
		return nil, domainerrors.NewValidationError(fields)
	}

	method := entity.DeliveryMethod(input.DeliveryMethod)
	address := input.Address
	if method == entity.DeliveryMethodPickup {
		address = ""
	}

	now := srv.now()

	return &entity.Order{
		ID:             orderID,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		DeliveryMethod: method,
		Address:        address,
		TotalPrice:     total,
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Items:          items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// trimmedInput returns a copy of input with surrounding whitespace removed
// from every free-text field.
func trimmedInput(input *usecase.SubmitOrderInput) *usecase.SubmitOrderInput {
	out := *input
	out.CustomerName = strings.TrimSpace(input.CustomerName)
	out.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	out.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	out.DeliveryMethod = strings.TrimSpace(input.DeliveryMethod)
	out.Address = strings.TrimSpace(input.Address)

	if input.Items != nil {
		out.Items = make([]usecase.OrderItemInput, len(input.Items))
	}
	for i, item := range input.Items {
		item.CompanyName = strings.TrimSpace(item.CompanyName)
		item.CompanyNameAr = strings.TrimSpace(item.CompanyNameAr)
		item.LicenseNumber = strings.TrimSpace(item.LicenseNumber)
		item.Emirate = strings.TrimSpace(item.Emirate)
		item.TradeLicenseURL = strings.TrimSpace(item.TradeLicenseURL)
		out.Items[i] = item
	}

	return &out
}
