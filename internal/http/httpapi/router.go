package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"storefront/internal/http/handlers"
	"storefront/internal/middleware"
)

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup

	// TrustProxyHeaders lets X-Forwarded-For and X-Real-IP replace the
	// connection address. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.RequestID,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	// Service
	r.Get("/v1/healthz", app.Health)
	r.Get(handlers.OpenAPIPath, app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	limited := middleware.RateLimit(opts.RateLimitPerMin)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dishes", app.ListDishes)
		r.Get("/kiosks", app.ListKiosks)
		r.Get("/cloud-kitchens", app.ListCloudKitchens)

		r.Route("/orders", func(r chi.Router) {
			r.With(limited).Post("/schedule", app.ScheduleOrder)
			r.With(limited).Post("/delivery", app.DeliveryOrder)
			r.Get("/{id}", app.GetOrder)
		})

		r.With(limited).Post("/nutrition/generate-plan", app.GeneratePlan)
	})

	return r
}
