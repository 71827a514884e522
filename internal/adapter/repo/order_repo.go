package repo

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/infra"
	"storefront/internal/sqlinline"
)

// OrderRepositoryPG implements domain.OrderRepository using PostgreSQL.
type OrderRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewOrderRepository(sql infra.SQLExecutor) *OrderRepositoryPG {
	return &OrderRepositoryPG{sql: sql}
}

// Create inserts the order and its lines atomically and returns the order id.
func (r *OrderRepositoryPG) Create(ctx context.Context, order domain.NewOrder) (int64, error) {
	d := order.Draft
	dishIDs := make([]int64, 0, len(order.Lines))
	quantities := make([]int32, 0, len(order.Lines))
	prices := make([]float64, 0, len(order.Lines))
	for _, line := range order.Lines {
		dishIDs = append(dishIDs, line.DishID)
		quantities = append(quantities, int32(line.Quantity))
		prices = append(prices, line.Price)
	}

	var id int64
	err := r.sql.QueryRow(ctx, sqlinline.QInsertOrderWithItems,
		d.UserEmail,
		d.UserPhone,
		string(d.Type),
		d.LocationID,
		order.TotalAmount,
		string(d.PaymentMethod),
		domain.PaymentStatusPending,
		domain.OrderStatusPlaced,
		d.PickupTime,
		d.DeliveryAddress,
		order.QRCode,
		dishIDs,
		quantities,
		prices,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// GetByID loads an order with its items; unknown ids yield domain.ErrNotFound.
func (r *OrderRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.sql.QueryRow(ctx, sqlinline.QSelectOrder, id).Scan(
		&o.ID, &o.UserEmail, &o.UserPhone, &o.OrderType, &o.LocationID, &o.TotalAmount,
		&o.PaymentMethod, &o.PaymentStatus, &o.OrderStatus,
		&o.PickupTime, &o.DeliveryAddress, &o.QRCode, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	rows, err := r.sql.Query(ctx, sqlinline.QListOrderItems, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	o.Items = []domain.OrderItem{}
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.DishID, &it.Quantity, &it.Price,
			&it.Name, &it.ImageURL, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return &o, nil
}

var _ domain.OrderRepository = (*OrderRepositoryPG)(nil)
