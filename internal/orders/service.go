package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
)

// Placed describes a stored order.
type Placed struct {
	OrderID int64
	QRCode  *string
	Quote   Quote
}

// Service validates, prices and stores orders.
type Service struct {
	dishes    domain.DishRepository
	locations domain.LocationRepository
	orders    domain.OrderRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewService(dishes domain.DishRepository, locations domain.LocationRepository, orders domain.OrderRepository, logger zerolog.Logger) *Service {
	return &Service{
		dishes:    dishes,
		locations: locations,
		orders:    orders,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for pickup codes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Place validates the draft, checks the fulfillment location, prices the cart
// and stores it. Validation failures wrap domain.ErrInvalidOrder,
// domain.ErrInactiveLocation or domain.ErrNoDishes.
func (s *Service) Place(ctx context.Context, draft domain.OrderDraft) (*Placed, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLocation(ctx, draft); err != nil {
		return nil, err
	}

	prices, err := s.dishes.PricesByID(ctx, distinctIDs(draft.DishIDs))
	if err != nil {
		return nil, fmt.Errorf("price dishes: %w", err)
	}
	quote, err := BuildQuote(draft.Type, draft.DishIDs, prices)
	if err != nil {
		return nil, err
	}

	var code *string
	if draft.Type == domain.OrderTypeKiosk {
		c := PickupCode(s.now())
		code = &c
	}

	id, err := s.orders.Create(ctx, domain.NewOrder{
		Draft:       draft,
		TotalAmount: quote.Total,
		QRCode:      code,
		Lines:       quote.Lines,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.logger.Info().
		Int64("order_id", id).
		Str("order_type", string(draft.Type)).
		Int64("location_id", draft.LocationID).
		Float64("total", quote.Total).
		Int("lines", len(quote.Lines)).
		Msg("order placed")
	return &Placed{OrderID: id, QRCode: code, Quote: quote}, nil
}

// Get loads an order with its items.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) checkLocation(ctx context.Context, draft domain.OrderDraft) error {
	var (
		active bool
		err    error
	)
	switch draft.Type {
	case domain.OrderTypeKiosk:
		var k *domain.Kiosk
		k, err = s.locations.GetKiosk(ctx, draft.LocationID)
		if err == nil {
			active = bool(k.IsActive)
		}
	case domain.OrderTypeDelivery:
		var k *domain.CloudKitchen
		k, err = s.locations.GetCloudKitchen(ctx, draft.LocationID)
		if err == nil {
			active = bool(k.IsActive)
		}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %d not found", domain.ErrInactiveLocation, draft.Type, draft.LocationID)
	}
	if err != nil {
		return fmt.Errorf("load location: %w", err)
	}
	if !active {
		return fmt.Errorf("%w: %s %d is not active", domain.ErrInactiveLocation, draft.Type, draft.LocationID)
	}
	return nil
}
