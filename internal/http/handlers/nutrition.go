package handlers

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/middleware"
)

// GeneratePlan validates a profile and returns a nutrition plan. The
// X-Advisor-Source header names the advisor, or "fallback".
func (a *App) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := a.decode(w, r, &profile); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := profile.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	result, err := a.Planner.GeneratePlan(r.Context(), profile, middleware.LocaleFromContext(r.Context()))
	if err != nil {
		a.Logger.Error().Err(err).Msg("generate nutrition plan")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to generate nutrition plan")
		return
	}
	w.Header().Set("X-Advisor-Source", result.Source)
	a.json(w, http.StatusOK, result.Plan)
}
