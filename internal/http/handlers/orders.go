package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain"
	"storefront/internal/middleware"
)

type scheduleOrderRequest struct {
	UserEmail     string  `json:"user_email"`
	UserPhone     *string `json:"user_phone"`
	KioskID       int64   `json:"kiosk_id"`
	PickupTime    string  `json:"pickup_time"`
	DishIDs       []int64 `json:"dish_ids"`
	PaymentMethod string  `json:"payment_method"`
}

type deliveryOrderRequest struct {
	UserEmail       string  `json:"user_email"`
	UserPhone       *string `json:"user_phone"`
	CloudKitchenID  int64   `json:"cloud_kitchen_id"`
	DeliveryAddress string  `json:"delivery_address"`
	DishIDs         []int64 `json:"dish_ids"`
	PaymentMethod   string  `json:"payment_method"`
}

// ScheduleOrder places a kiosk pickup order.
func (a *App) ScheduleOrder(w http.ResponseWriter, r *http.Request) {
	var req scheduleOrderRequest
	if err := a.decode(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	placed, err := a.Orders.Place(r.Context(), domain.OrderDraft{
		Type:          domain.OrderTypeKiosk,
		UserEmail:     req.UserEmail,
		UserPhone:     req.UserPhone,
		LocationID:    req.KioskID,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PickupTime:    req.PickupTime,
		DishIDs:       req.DishIDs,
	})
	if err != nil {
		a.orderError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"order_id":      placed.OrderID,
		"qr_code":       placed.QRCode,
		"total_amount":  placed.Quote.Total,
		"total_display": a.displayTotal(r, placed.Quote.Total),
	})
}

// DeliveryOrder places a cloud-kitchen delivery order.
func (a *App) DeliveryOrder(w http.ResponseWriter, r *http.Request) {
	var req deliveryOrderRequest
	if err := a.decode(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	placed, err := a.Orders.Place(r.Context(), domain.OrderDraft{
		Type:            domain.OrderTypeDelivery,
		UserEmail:       req.UserEmail,
		UserPhone:       req.UserPhone,
		LocationID:      req.CloudKitchenID,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		DeliveryAddress: req.DeliveryAddress,
		DishIDs:         req.DishIDs,
	})
	if err != nil {
		a.orderError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"order_id":      placed.OrderID,
		"total_amount":  placed.Quote.Total,
		"delivery_fee":  placed.Quote.DeliveryFee,
		"total_display": a.displayTotal(r, placed.Quote.Total),
	})
}

// GetOrder returns an order with its items.
func (a *App) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid order id")
		return
	}
	order, err := a.Orders.Get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "Order not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Int64("order_id", id).Msg("get order")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to fetch order")
		return
	}
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	a.json(w, http.StatusOK, order)
}

func (a *App) orderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidOrder),
		errors.Is(err, domain.ErrInactiveLocation),
		errors.Is(err, domain.ErrNoDishes):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		a.Logger.Error().Err(err).Msg("place order")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to create order")
	}
}

func (a *App) displayTotal(r *http.Request, amount float64) string {
	if a.Money == nil {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	ctx := r.Context()
	return a.Money.Format(amount, middleware.LocaleFromContext(ctx), middleware.CountryFromContext(ctx))
}
