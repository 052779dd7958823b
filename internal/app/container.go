package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"truckhub/internal/auth"
	"truckhub/internal/config"
	"truckhub/internal/http/handlers"
	"truckhub/internal/http/middleware/ratelimit"
	"truckhub/internal/http/router"
	"truckhub/internal/logx"
	"truckhub/internal/metrics"
	"truckhub/internal/repository"
	"truckhub/internal/service/accounts"
	"truckhub/internal/service/catalog"
	"truckhub/internal/service/dashboard"
	"truckhub/internal/service/fleet"
	"truckhub/internal/service/orders"
	"truckhub/internal/service/trips"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func(cfg *config.Config) *auth.Service {
			return auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		},
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type metricsOut struct {
	dig.Out
	RateLimitExceeded prometheus.Counter     `name:"rate_limit_exceeded_total"`
	TripAssignments   *prometheus.CounterVec `name:"trip_assignments_total"`
	OrderEvents       *prometheus.CounterVec `name:"order_events_total"`
}

func newMetrics() metricsOut {
	out := metricsOut{
		RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		TripAssignments:   metrics.NewTripAssignmentsTotal(),
		OrderEvents:       metrics.NewOrderEventsTotal(),
	}
	prometheus.MustRegister(out.RateLimitExceeded, out.TripAssignments, out.OrderEvents)
	return out
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newMetrics)
}

type tripServiceIn struct {
	dig.In
	Repo        *repository.TripRepo
	Assignments *prometheus.CounterVec `name:"trip_assignments_total"`
	Timeout     time.Duration
	Logger      logx.Logger
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewTruckRepo,
		repository.NewDriverRepo,
		repository.NewTripRepo,
		repository.NewOrderRepo,
		repository.NewProductRepo,
		repository.NewAccountRepo,
		repository.NewStatsRepo,
		func() time.Duration { return 3 * time.Second },
		func(in tripServiceIn) *trips.Service {
			return trips.NewService(in.Repo, in.Assignments, in.Timeout, in.Logger)
		},
		func(trucks *repository.TruckRepo, drivers *repository.DriverRepo,
			tripsRepo *repository.TripRepo, timeout time.Duration) *fleet.Service {
			return fleet.NewService(trucks, drivers, tripsRepo, timeout)
		},
		func(repo *repository.OrderRepo, tripsRepo *repository.TripRepo,
			timeout time.Duration, logger logx.Logger) *orders.Service {
			return orders.NewService(repo, tripsRepo, timeout, logger)
		},
		func(products *repository.ProductRepo, acc *repository.AccountRepo,
			timeout time.Duration) *catalog.Service {
			return catalog.NewService(products, acc, timeout)
		},
		func(acc *repository.AccountRepo, tokens *auth.Service,
			timeout time.Duration, logger logx.Logger) *accounts.Service {
			return accounts.NewService(acc, tokens, timeout, logger)
		},
		func(stats *repository.StatsRepo, acc *repository.AccountRepo,
			timeout time.Duration) *dashboard.Service {
			return dashboard.NewService(stats, acc, timeout)
		},
	)
}

type routerIn struct {
	dig.In
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
	Validator *auth.Service
	RateLimit *ratelimit.Middleware
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(in routerIn) http.Handler {
		return router.New(router.Deps{
			Logger:    in.Logger,
			Base:      in.Base,
			Auth:      in.Auth,
			Trucks:    in.Trucks,
			Drivers:   in.Drivers,
			Orders:    in.Orders,
			Trips:     in.Trips,
			Products:  in.Products,
			Profile:   in.Profile,
			Dashboard: in.Dashboard,
			Validator: in.Validator,
			RateLimit: in.RateLimit.Handler(),
		})
	}
	return provideAll(container,
		handlers.New,
		handlers.NewFleetUsecase,
		handlers.NewOrderUsecase,
		handlers.NewTripUsecase,
		handlers.NewCatalogUsecase,
		handlers.NewAccountUsecase,
		handlers.NewDashboardUsecase,
		handlers.NewAuthHandler,
		handlers.NewTruckHandler,
		handlers.NewDriverHandler,
		handlers.NewOrderHandler,
		handlers.NewTripHandler,
		handlers.NewProductHandler,
		handlers.NewProfileHandler,
		handlers.NewDashboardHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}
