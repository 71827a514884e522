package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/nutrition"
	"storefront/internal/orders"
	"storefront/internal/providers/advisor"
)

type fakeDishes struct {
	dishes []domain.RawDish
	err    error
}

func (f *fakeDishes) ListAvailable(context.Context) ([]domain.RawDish, error) {
	return f.dishes, f.err
}

func (f *fakeDishes) PricesByID(_ context.Context, ids []int64) (map[int64]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[int64]float64{}
	for _, id := range ids {
		for _, d := range f.dishes {
			if d.ID == id && bool(d.Available) {
				out[id] = d.Price
			}
		}
	}
	return out, nil
}

type fakeLocations struct {
	kiosks   []domain.Kiosk
	kitchens []domain.CloudKitchen
	err      error
}

func (f *fakeLocations) ListActiveKiosks(context.Context) ([]domain.Kiosk, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Kiosk
	for _, k := range f.kiosks {
		if k.IsActive {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeLocations) ListActiveCloudKitchens(context.Context) ([]domain.CloudKitchen, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.CloudKitchen
	for _, k := range f.kitchens {
		if k.IsActive {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeLocations) GetKiosk(_ context.Context, id int64) (*domain.Kiosk, error) {
	for _, k := range f.kiosks {
		if k.ID == id {
			k := k
			return &k, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLocations) GetCloudKitchen(_ context.Context, id int64) (*domain.CloudKitchen, error) {
	for _, k := range f.kitchens {
		if k.ID == id {
			k := k
			return &k, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeOrders struct {
	created []domain.NewOrder
	stored  map[int64]*domain.Order
	err     error
}

func (f *fakeOrders) Create(_ context.Context, order domain.NewOrder) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, order)
	return int64(100 + len(f.created)), nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.stored[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func strPtr(s string) *string { return &s }

func testCatalog() []domain.RawDish {
	return []domain.RawDish{
		{ID: 1, Name: "Paneer Tikka Bowl", Description: strPtr("Grilled paneer with rice"), Calories: domain.MacroTextValue("250-290 kcal"), Protein: domain.MacroNumberValue(22), Carbs: domain.MacroNumberValue(30), Fats: domain.MacroNumberValue(9), Price: 300, IsVegetarian: true, IsHighProtein: true, Available: true},
		{ID: 2, Name: "Chicken Biryani", Calories: domain.MacroNumberValue(520), Protein: domain.MacroTextValue("28g"), Carbs: domain.MacroNumberValue(60), Fats: domain.MacroNumberValue(18), Price: 250, Available: true},
		{ID: 3, Name: "Masala Chaas", Calories: domain.MacroNumberValue(60), Protein: domain.MacroNumberValue(3), Carbs: domain.MacroNumberValue(6), Fats: domain.MacroNumberValue(2), Price: 40, IsVegetarian: true, IsLowCalorie: true, Available: true},
	}
}

var fixedClock = time.UnixMilli(1700000123456)

func newTestApp(dishes *fakeDishes, locations *fakeLocations, store *fakeOrders) *App {
	logger := zerolog.Nop()
	return &App{
		Logger:    logger,
		Dishes:    dishes,
		Locations: locations,
		Orders:    orders.NewService(dishes, locations, store, logger).WithClock(func() time.Time { return fixedClock }),
		Planner:   nutrition.NewEngine(dishes, advisor.NewStatic(), logger, time.Second),
		Money:     orders.NewFormatter("INR"),
	}
}
