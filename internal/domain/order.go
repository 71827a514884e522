package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// OrderType distinguishes the two fulfillment flows.
type OrderType string

const (
	OrderTypeKiosk    OrderType = "kiosk"
	OrderTypeDelivery OrderType = "delivery"
)

// PaymentMethod enumerates accepted payment rails.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "netbanking"
)

const (
	PaymentStatusPending = "pending"
	OrderStatusPlaced    = "placed"
)

// OrderDraft is the serializable cart submitted at checkout.
type OrderDraft struct {
	Type            OrderType
	UserEmail       string
	UserPhone       *string
	LocationID      int64
	PaymentMethod   PaymentMethod
	PickupTime      string
	DeliveryAddress string
	DishIDs         []int64
}

// Validate checks the fields required by the draft's fulfillment flow.
func (d OrderDraft) Validate() error {
	if _, err := mail.ParseAddress(strings.TrimSpace(d.UserEmail)); err != nil {
		return fmt.Errorf("%w: user_email must be a valid email", ErrInvalidOrder)
	}
	if d.LocationID <= 0 {
		return fmt.Errorf("%w: location is required", ErrInvalidOrder)
	}
	switch d.PaymentMethod {
	case PaymentUPI, PaymentNetBanking:
	default:
		return fmt.Errorf("%w: unsupported payment_method %q", ErrInvalidOrder, d.PaymentMethod)
	}
	if len(d.DishIDs) == 0 {
		return fmt.Errorf("%w: dish_ids must not be empty", ErrInvalidOrder)
	}
	switch d.Type {
	case OrderTypeKiosk:
		if strings.TrimSpace(d.PickupTime) == "" {
			return fmt.Errorf("%w: pickup_time is required", ErrInvalidOrder)
		}
	case OrderTypeDelivery:
		if strings.TrimSpace(d.DeliveryAddress) == "" {
			return fmt.Errorf("%w: delivery_address is required", ErrInvalidOrder)
		}
	default:
		return fmt.Errorf("%w: unsupported order type %q", ErrInvalidOrder, d.Type)
	}
	return nil
}

// OrderLine is a priced dish within an order.
type OrderLine struct {
	DishID   int64
	Quantity int
	Price    float64
}

// NewOrder is what gets persisted for a priced draft.
type NewOrder struct {
	Draft       OrderDraft
	TotalAmount float64
	QRCode      *string
	Lines       []OrderLine
}

// Order is a persisted order.
type Order struct {
	ID              int64       `json:"id"`
	UserEmail       string      `json:"user_email"`
	UserPhone       *string     `json:"user_phone"`
	OrderType       OrderType   `json:"order_type"`
	LocationID      *int64      `json:"location_id"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   *string     `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	OrderStatus     string      `json:"order_status"`
	PickupTime      *string     `json:"pickup_time"`
	DeliveryAddress *string     `json:"delivery_address"`
	QRCode          *string     `json:"qr_code"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is an order line joined with its dish.
type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	DishID    int64     `json:"dish_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
