package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// ListDishes serves available dishes with macros in their stored form.
// Optional filters: vegetarian=true|false and q (name/description substring).
func (a *App) ListDishes(w http.ResponseWriter, r *http.Request) {
	filter, err := dishFilterFromQuery(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	dishes, err := a.Dishes.ListAvailable(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list dishes")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to fetch dishes")
		return
	}
	out := make([]domain.RawDish, 0, len(dishes))
	for _, d := range dishes {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	a.json(w, http.StatusOK, out)
}

func dishFilterFromQuery(r *http.Request) (domain.DishFilter, error) {
	q := r.URL.Query()
	filter := domain.DishFilter{Search: strings.TrimSpace(q.Get("q"))}
	if raw := strings.TrimSpace(q.Get("vegetarian")); raw != "" {
		veg, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errBadQuery("vegetarian must be true or false")
		}
		filter.Vegetarian = &veg
	}
	return filter, nil
}

func (a *App) ListKiosks(w http.ResponseWriter, r *http.Request) {
	kiosks, err := a.Locations.ListActiveKiosks(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list kiosks")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to fetch kiosks")
		return
	}
	if kiosks == nil {
		kiosks = []domain.Kiosk{}
	}
	a.json(w, http.StatusOK, kiosks)
}

func (a *App) ListCloudKitchens(w http.ResponseWriter, r *http.Request) {
	kitchens, err := a.Locations.ListActiveCloudKitchens(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list cloud kitchens")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to fetch cloud kitchens")
		return
	}
	if kitchens == nil {
		kitchens = []domain.CloudKitchen{}
	}
	a.json(w, http.StatusOK, kitchens)
}

type errBadQuery string

func (e errBadQuery) Error() string { return string(e) }
