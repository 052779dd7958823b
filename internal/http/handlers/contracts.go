package handlers

import (
	"context"

	"truckhub/internal/domain"
	"truckhub/internal/service/accounts"
	"truckhub/internal/service/catalog"
	"truckhub/internal/service/dashboard"
	"truckhub/internal/service/fleet"
	"truckhub/internal/service/orders"
	"truckhub/internal/service/trips"
)

type fleetUsecase interface {
	ListTrucks(ctx context.Context, ownerID int64) ([]domain.Truck, error)
	CreateTruck(ctx context.Context, ownerID int64, t *domain.Truck) (int64, error)
	UpdateTruck(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) error
	DeleteTruck(ctx context.Context, ownerID, truckID int64) error
	ListDrivers(ctx context.Context, ownerID int64) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, ownerID int64, d *domain.Driver) (int64, error)
	UpdateDriver(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) error
	DeleteDriver(ctx context.Context, ownerID, driverID int64) error
}

// NewFleetUsecase wires a fleet.Service into a fleetUsecase.
func NewFleetUsecase(svc *fleet.Service) fleetUsecase {
	return svc
}

type orderUsecase interface {
	List(ctx context.Context, ownerID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, ownerID int64, orderID string, next domain.OrderStatus) (*domain.Order, error)
}

// NewOrderUsecase wires an orders.Service into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase {
	return svc
}

type tripUsecase interface {
	List(ctx context.Context, ownerID int64) ([]domain.Trip, error)
	Assign(ctx context.Context, ownerID int64, in trips.AssignInput) (*domain.Trip, error)
	Transition(ctx context.Context, ownerID, tripID int64, next domain.TripStatus) (*domain.Trip, error)
}

// NewTripUsecase wires a trips.Service into a tripUsecase.
func NewTripUsecase(svc *trips.Service) tripUsecase {
	return svc
}

type catalogUsecase interface {
	Get(ctx context.Context, manufacturerID, productID int64) (*domain.Product, error)
	List(ctx context.Context, manufacturerID int64) ([]domain.Product, error)
	Search(ctx context.Context, manufacturerID int64, f domain.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, manufacturerID int64, p *domain.Product) (int64, error)
	Update(ctx context.Context, manufacturerID int64, u domain.PartialProductUpdate) error
	Delete(ctx context.Context, manufacturerID, productID int64) error
}

// NewCatalogUsecase wires a catalog.Service into a catalogUsecase.
func NewCatalogUsecase(svc *catalog.Service) catalogUsecase {
	return svc
}

type accountUsecase interface {
	ProvisionTruckOwner(ctx context.Context, in accounts.ProvisionOwnerInput) (int64, error)
	ProvisionManufacturer(ctx context.Context, in accounts.ProvisionManufacturerInput) (int64, error)
	Login(ctx context.Context, phone, password string) (*accounts.LoginResult, error)
	Profile(ctx context.Context, ownerID int64) (*domain.TruckOwner, error)
	UpdateProfile(ctx context.Context, u domain.PartialOwnerUpdate) error
}

// NewAccountUsecase wires an accounts.Service into an accountUsecase.
func NewAccountUsecase(svc *accounts.Service) accountUsecase {
	return svc
}

type dashboardUsecase interface {
	OwnerStats(ctx context.Context, ownerID int64) (*dashboard.Stats, error)
}

// NewDashboardUsecase wires a dashboard.Service into a dashboardUsecase.
func NewDashboardUsecase(svc *dashboard.Service) dashboardUsecase {
	return svc
}
