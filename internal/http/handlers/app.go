package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/nutrition"
	"storefront/internal/orders"
)

// OrderService places and loads orders.
type OrderService interface {
	Place(ctx context.Context, draft domain.OrderDraft) (*orders.Placed, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

// PlanGenerator produces nutrition plans.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile domain.UserProfile, locale string) (*nutrition.Result, error)
}

// Pinger reports backing store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Logger    zerolog.Logger
	Dishes    domain.DishRepository
	Locations domain.LocationRepository
	Orders    OrderService
	Planner   PlanGenerator
	Money     *orders.Formatter
	DB        Pinger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": message, "code": code})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(v)
}
