package domain

import "context"

// DishRepository reads the dish catalog.
type DishRepository interface {
	ListAvailable(ctx context.Context) ([]RawDish, error)
	PricesByID(ctx context.Context, ids []int64) (map[int64]float64, error)
}

// LocationRepository reads fulfillment locations.
type LocationRepository interface {
	ListActiveKiosks(ctx context.Context) ([]Kiosk, error)
	ListActiveCloudKitchens(ctx context.Context) ([]CloudKitchen, error)
	GetKiosk(ctx context.Context, id int64) (*Kiosk, error)
	GetCloudKitchen(ctx context.Context, id int64) (*CloudKitchen, error)
}

// OrderRepository persists and loads orders.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (int64, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
}
