package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/infra/sqlfake"
	"storefront/internal/sqlinline"
)

func TestOrderRepositoryCreate(t *testing.T) {
	exec := sqlfake.New().On(sqlinline.QInsertOrderWithItems, sqlfake.Result{Rows: [][]any{{int64(77)}}})
	code := "PICKUP123456"
	id, err := NewOrderRepository(exec).Create(context.Background(), domain.NewOrder{
		Draft: domain.OrderDraft{
			Type:          domain.OrderTypeKiosk,
			UserEmail:     "a@b.co",
			LocationID:    3,
			PaymentMethod: domain.PaymentUPI,
			PickupTime:    "12:30",
			DishIDs:       []int64{5, 6, 5},
		},
		TotalAmount: 340,
		QRCode:      &code,
		Lines: []domain.OrderLine{
			{DishID: 5, Quantity: 2, Price: 120},
			{DishID: 6, Quantity: 1, Price: 100},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 77 {
		t.Fatalf("id = %d, want 77", id)
	}
	args := exec.Calls(sqlinline.QInsertOrderWithItems)[0].Args
	if len(args) != 14 {
		t.Fatalf("args = %d, want 14", len(args))
	}
	if args[2] != "kiosk" || args[6] != domain.PaymentStatusPending || args[7] != domain.OrderStatusPlaced {
		t.Fatalf("unexpected status args: %v", args)
	}
	if q, ok := args[12].([]int32); !ok || len(q) != 2 || q[0] != 2 {
		t.Fatalf("quantities = %#v", args[12])
	}
	if p, ok := args[13].([]float64); !ok || p[1] != 100 {
		t.Fatalf("prices = %#v", args[13])
	}
}

func TestOrderRepositoryCreateError(t *testing.T) {
	exec := sqlfake.New().On(sqlinline.QInsertOrderWithItems, sqlfake.Result{Err: errors.New("fk violation")})
	if _, err := NewOrderRepository(exec).Create(context.Background(), domain.NewOrder{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestOrderRepositoryGetByID(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	exec := sqlfake.New().
		On(sqlinline.QSelectOrder, sqlfake.Result{Rows: [][]any{{
			int64(77), "a@b.co", nil, "delivery", int64(4), float64(270),
			"upi", "pending", "placed",
			nil, "Hostel 5, Room 12", nil, now, now,
		}}}).
		On(sqlinline.QListOrderItems, sqlfake.Result{Rows: [][]any{
			{int64(1), int64(77), int64(5), 2, float64(110), "Paneer Roll", "https://img/1.jpg", now, now},
		}})
	order, err := NewOrderRepository(exec).GetByID(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if order.OrderType != domain.OrderTypeDelivery || order.DeliveryAddress == nil || order.PickupTime != nil {
		t.Fatalf("order = %+v", order)
	}
	if order.PaymentMethod == nil || *order.PaymentMethod != "upi" {
		t.Fatalf("PaymentMethod = %v", order.PaymentMethod)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Paneer Roll" || order.Items[0].Quantity != 2 {
		t.Fatalf("items = %+v", order.Items)
	}
}

func TestOrderRepositoryGetByIDNotFound(t *testing.T) {
	exec := sqlfake.New().On(sqlinline.QSelectOrder, sqlfake.Result{})
	if _, err := NewOrderRepository(exec).GetByID(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(exec.Calls(sqlinline.QListOrderItems)) != 0 {
		t.Fatal("items should not be loaded for a missing order")
	}
}
