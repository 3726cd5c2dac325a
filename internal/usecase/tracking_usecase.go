package usecase

import (
	"context"

	"stampshop/internal/domain/entity"
)

// TrackingUsecase answers customer order lookups.
type TrackingUsecase interface {
	// TrackOrder returns the public view of an order when the phone matches.
	TrackOrder(ctx context.Context, friendlyID, phone string) (*entity.TrackedOrder, error)

	// TrackingQR renders a QR code linking to the tracking page for friendlyID.
	TrackingQR(ctx context.Context, friendlyID string) ([]byte, error)
}
