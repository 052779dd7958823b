//go:build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"truckhub/internal/domain"
	"truckhub/internal/repository"
)

var (
	tcPool *pgxpool.Pool
	tcDSN  string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("truckhub_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	tcDSN, err = pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("connection string: %v", err)
	}

	tcPool, err = repository.NewPool(ctx, tcDSN)
	if err != nil {
		log.Fatalf("connect pool: %v", err)
	}

	if err := createTables(ctx, tcPool); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	code := m.Run()

	tcPool.Close()
	if err := pg.Terminate(ctx); err != nil {
		log.Printf("terminate container: %v", err)
	}
	os.Exit(code)
}

func createTables(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id            BIGSERIAL PRIMARY KEY,
            phone         TEXT NOT NULL UNIQUE,
            email         TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            role          TEXT NOT NULL,
            is_active     BOOLEAN NOT NULL DEFAULT TRUE,
            created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS truck_owners (
            id         BIGSERIAL PRIMARY KEY,
            user_id    BIGINT UNIQUE REFERENCES users(id),
            name       TEXT NOT NULL,
            phone      TEXT NOT NULL DEFAULT '',
            email      TEXT NOT NULL DEFAULT '',
            location   TEXT NOT NULL DEFAULT '',
            status     TEXT NOT NULL DEFAULT 'active',
            experience INT NOT NULL DEFAULT 0,
            rating     DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS manufacturers (
            id            BIGSERIAL PRIMARY KEY,
            user_id       BIGINT UNIQUE REFERENCES users(id),
            company_name  TEXT NOT NULL,
            business_type TEXT NOT NULL DEFAULT '',
            rating        DOUBLE PRECISION NOT NULL DEFAULT 0
        );

        CREATE TABLE IF NOT EXISTS trucks (
            id              BIGSERIAL PRIMARY KEY,
            owner_id        BIGINT NOT NULL,
            truck_no        TEXT NOT NULL UNIQUE,
            truck_type      TEXT NOT NULL DEFAULT '',
            capacity_tonnes DOUBLE PRECISION NOT NULL DEFAULT 0,
            fuel_type       TEXT NOT NULL DEFAULT '',
            status          TEXT NOT NULL DEFAULT 'ACTIVE',
            created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS drivers (
            id         BIGSERIAL PRIMARY KEY,
            owner_id   BIGINT NOT NULL,
            name       TEXT NOT NULL,
            phone      TEXT NOT NULL DEFAULT '',
            license_no TEXT NOT NULL DEFAULT '',
            status     TEXT NOT NULL DEFAULT 'AVAILABLE',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS orders (
            id                TEXT PRIMARY KEY,
            manufacturer_id   BIGINT NOT NULL,
            assigned_owner_id BIGINT,
            status            TEXT NOT NULL,
            delivery_address  TEXT NOT NULL DEFAULT '',
            order_date        TIMESTAMPTZ NOT NULL DEFAULT now(),
            created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS order_items (
            id         BIGSERIAL PRIMARY KEY,
            order_id   TEXT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL,
            quantity   INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL
        );

        CREATE TABLE IF NOT EXISTS products (
            id              BIGSERIAL PRIMARY KEY,
            manufacturer_id BIGINT NOT NULL,
            name            TEXT NOT NULL,
            category        TEXT NOT NULL DEFAULT 'General',
            price           DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock_quantity  INT NOT NULL DEFAULT 0,
            description     TEXT NOT NULL DEFAULT '',
            is_active       BOOLEAN NOT NULL DEFAULT TRUE,
            created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE IF NOT EXISTS trips (
            id                      BIGSERIAL PRIMARY KEY,
            order_id                TEXT NOT NULL REFERENCES orders(id),
            driver_id               BIGINT NOT NULL,
            truck_id                BIGINT NOT NULL,
            owner_id                BIGINT NOT NULL,
            from_location           TEXT NOT NULL,
            to_location             TEXT NOT NULL,
            cargo                   TEXT NOT NULL DEFAULT '',
            status                  TEXT NOT NULL,
            estimated_delivery_date TIMESTAMPTZ,
            actual_delivery_date    TIMESTAMPTZ,
            special_instructions    TEXT NOT NULL DEFAULT '',
            created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE UNIQUE INDEX IF NOT EXISTS trips_live_order_uq
            ON trips(order_id) WHERE status IN ('UPCOMING', 'RUNNING');
    `)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := tcPool.Exec(context.Background(), `
        TRUNCATE trips, order_items, orders, products, drivers, trucks,
                 manufacturers, truck_owners, users
        RESTART IDENTITY CASCADE
    `)
	require.NoError(t, err)
}

func seedOwner(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	err := tcPool.QueryRow(context.Background(),
		`INSERT INTO truck_owners(name) VALUES($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedDriver(t *testing.T, ownerID int64, status domain.DriverStatus) int64 {
	t.Helper()
	var id int64
	err := tcPool.QueryRow(context.Background(), `
        INSERT INTO drivers(owner_id, name, phone, status)
        VALUES($1, 'Test Driver', '+919876543210', $2) RETURNING id
    `, ownerID, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedTruck(t *testing.T, ownerID int64, truckNo string, status domain.TruckStatus) int64 {
	t.Helper()
	var id int64
	err := tcPool.QueryRow(context.Background(), `
        INSERT INTO trucks(owner_id, truck_no, status)
        VALUES($1, $2, $3) RETURNING id
    `, ownerID, truckNo, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedTrip(t *testing.T, orderID string, driverID, truckID, ownerID int64, status domain.TripStatus) int64 {
	t.Helper()
	var id int64
	err := tcPool.QueryRow(context.Background(), `
        INSERT INTO trips(order_id, driver_id, truck_id, owner_id,
                          from_location, to_location, status)
        VALUES($1, $2, $3, $4, 'Pune', 'Mumbai', $5) RETURNING id
    `, orderID, driverID, truckID, ownerID, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedOrder(t *testing.T, orderID string, ownerID int64, status domain.OrderStatus) {
	t.Helper()
	_, err := tcPool.Exec(context.Background(), `
        INSERT INTO orders(id, manufacturer_id, assigned_owner_id, status)
        VALUES($1, 1, $2, $3)
    `, orderID, ownerID, status)
	require.NoError(t, err)
}
