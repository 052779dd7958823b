package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"truckhub/internal/domain"
	"truckhub/internal/http/handlers"
	mw "truckhub/internal/http/middleware"
	"truckhub/internal/logx"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Trucks    *handlers.TruckHandler
	Drivers   *handlers.DriverHandler
	Orders    *handlers.OrderHandler
	Trips     *handlers.TripHandler
	Products  *handlers.ProductHandler
	Profile   *handlers.ProfileHandler
	Dashboard *handlers.DashboardHandler
	Validator mw.TokenValidator
	RateLimit func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit)
	}
	r.Use(mw.Observability(d.Logger))
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", d.Auth.Login)
		r.Post("/register/truck-owner", d.Auth.RegisterTruckOwner)
		r.Post("/register/manufacturer", d.Auth.RegisterManufacturer)
	})

	r.Route("/api/truck-owners", func(r chi.Router) {
		r.Use(mw.Auth(d.Validator))
		r.Use(mw.RequireRole(domain.RoleTruckOwner))

		r.Get("/dashboard/stats", d.Dashboard.Get)
		r.Get("/profile", d.Profile.Get)
		r.Put("/profile", d.Profile.Update)

		r.Get("/trucks", d.Trucks.List)
		r.Post("/trucks", d.Trucks.Create)
		r.Put("/trucks/{id}", d.Trucks.Update)
		r.Delete("/trucks/{id}", d.Trucks.Delete)

		r.Get("/drivers", d.Drivers.List)
		r.Post("/drivers", d.Drivers.Create)
		r.Put("/drivers/{id}", d.Drivers.Update)
		r.Delete("/drivers/{id}", d.Drivers.Delete)

		r.Get("/orders", d.Orders.List)
		r.Put("/orders/{id}/status", d.Orders.UpdateStatus)

		r.Get("/trips", d.Trips.List)
		r.Post("/trips", d.Trips.Assign)
		r.Put("/trips/{id}/status", d.Trips.UpdateStatus)
	})

	r.Route("/api/manufacturer-products", func(r chi.Router) {
		r.Use(mw.Auth(d.Validator))
		r.Use(mw.RequireRole(domain.RoleManufacturer))

		r.Get("/", d.Products.List)
		r.Get("/search", d.Products.Search)
		r.Get("/{id}", d.Products.Get)
		r.Post("/", d.Products.Create)
		r.Put("/{id}", d.Products.Update)
		r.Delete("/{id}", d.Products.Delete)
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
