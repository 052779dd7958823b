package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `id, manufacturer_id, assigned_owner_id, status,
		delivery_address, order_date, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }, o *domain.Order) error {
	return row.Scan(&o.ID, &o.ManufacturerID, &o.AssignedOwnerID, &o.Status,
		&o.DeliveryAddress, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
}

// Get returns an order by id, scoped to the assigned truck owner.
func (r *OrderRepo) Get(ctx context.Context, orderID string, ownerID int64) (*domain.Order, error) {
	var o domain.Order
	err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 AND assigned_owner_id=$2`,
		orderID, ownerID), &o)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %q: %w", orderID, err)
	}
	return &o, nil
}

// ListAssigned returns orders assigned to the truck owner, newest first,
// with their line items.
func (r *OrderRepo) ListAssigned(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE assigned_owner_id=$1 ORDER BY order_date DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list assigned orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, product_id, quantity, unit_price
        FROM order_items WHERE order_id = $1 ORDER BY id
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Insert records a new order with its items. A duplicate order id maps to
// apperr.ErrConflict, which lets the event consumer treat redelivery as done.
func (r *OrderRepo) Insert(ctx context.Context, o *domain.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (id, manufacturer_id, assigned_owner_id, status,
                            delivery_address, order_date)
        VALUES ($1,$2,$3,$4,$5,$6)
    `, o.ID, o.ManufacturerID, o.AssignedOwnerID, o.Status, o.DeliveryAddress, o.OrderDate)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert order %q: %w", o.ID, err)
	}

	for i := range o.Items {
		it := &o.Items[i]
		err := r.db.QueryRow(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity, unit_price)
            VALUES ($1,$2,$3,$4) RETURNING id
        `, o.ID, it.ProductID, it.Quantity, it.UnitPrice).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order item for %q: %w", o.ID, err)
		}
	}
	return nil
}

// UpdateStatusWhere flips the order status only when the current status is in
// allowedFrom. Returns true if a row was affected; false means the order does
// not exist, is not owned, or its status changed concurrently.
func (r *OrderRepo) UpdateStatusWhere(ctx context.Context, orderID string, ownerID int64,
	status domain.OrderStatus, allowedFrom []domain.OrderStatus) (bool, error) {

	from := make([]string, len(allowedFrom))
	for i, s := range allowedFrom {
		from[i] = string(s)
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $3, updated_at = now()
        WHERE id = $1 AND assigned_owner_id = $2 AND status = ANY($4)
    `, orderID, ownerID, string(status), from)
	if err != nil {
		return false, fmt.Errorf("update order status %q: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// CancelUnassigned cancels an order regardless of owner, used by the event
// intake path. Once a live trip exists the trip lifecycle owns the order, so
// the update skips those rows along with terminal ones. Returns true if the
// order was cancelled.
func (r *OrderRepo) CancelUnassigned(ctx context.Context, orderID string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status NOT IN ($3, $4)
          AND NOT EXISTS (
              SELECT 1 FROM trips
              WHERE trips.order_id = orders.id AND trips.status IN ($5, $6)
          )
    `, orderID, domain.OrderCancelled, domain.OrderCompleted, domain.OrderCancelled,
		domain.TripUpcoming, domain.TripRunning)
	if err != nil {
		return false, fmt.Errorf("cancel order %q: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}
