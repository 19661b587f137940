package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domorder "github.com/dhdiogoh/cyga-ecommerce/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order and its items, decrementing the stock of
// each product in the same transaction. Insufficient stock or an
// unknown product aborts the whole checkout.
func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	for i := range o.Items {
		item := &o.Items[i]

		var stock int64
		err := tx.QueryRowContext(ctx, `
            SELECT stock FROM products WHERE id = $1 FOR UPDATE
        `, item.ProductID).Scan(&stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: product %s no longer exists", domorder.ErrCheckoutValidation, item.ProductID)
			}
			return nil, err
		}
		if stock < item.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for %s", domorder.ErrCheckoutValidation, item.Name)
		}

		_, err = tx.ExecContext(ctx, `
            UPDATE products SET stock = stock - $1 WHERE id = $2
        `, item.Quantity, item.ProductID)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO orders (id, customer_id, status, payment_method,
            recipient, street, number, complement, district, city, state, zip,
            subtotal_cents, shipping_cents, total_cents)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, o.ID, o.CustomerID, o.Status, o.PaymentMethod,
		o.Address.Recipient, o.Address.Street, o.Address.Number, o.Address.Complement,
		o.Address.District, o.Address.City, o.Address.State, o.Address.Zip,
		o.Subtotal, o.Shipping, o.Total)
	if err != nil {
		return nil, err
	}

	for i := range o.Items {
		item := &o.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.OrderID = o.ID

		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (id, order_id, product_id, name, unit_price_cents, quantity)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, item.ID, item.OrderID, item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, o.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	orders, err := r.list(ctx, "o.id = $1", []any{id})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domorder.ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *OrderRepository) List(ctx context.Context, filter domorder.ListFilter) ([]*domorder.Order, error) {
	var clauses []string
	var args []any

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		clauses = append(clauses, fmt.Sprintf("o.customer_id = $%d", len(args)))
	}
	if filter.OrderID != "" {
		args = append(args, filter.OrderID)
		clauses = append(clauses, fmt.Sprintf("o.id = $%d", len(args)))
	}

	return r.list(ctx, strings.Join(clauses, " AND "), args)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domorder.Status) (*domorder.Order, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders SET status = $1 WHERE id = $2
    `, status, id)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domorder.ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) list(ctx context.Context, where string, args []any) ([]*domorder.Order, error) {
	query := `
        SELECT o.id, o.customer_id, o.status, o.payment_method,
            o.recipient, o.street, o.number, o.complement, o.district, o.city, o.state, o.zip,
            o.subtotal_cents, o.shipping_cents, o.total_cents, o.created_at
        FROM orders o
    `
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY o.created_at DESC, o.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domorder.Order
	byID := make(map[string]*domorder.Order)
	for rows.Next() {
		var o domorder.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.PaymentMethod,
			&o.Address.Recipient, &o.Address.Street, &o.Address.Number, &o.Address.Complement,
			&o.Address.District, &o.Address.City, &o.Address.State, &o.Address.Zip,
			&o.Subtotal, &o.Shipping, &o.Total, &o.CreatedAt)
		if err != nil {
			return nil, err
		}
		o.Items = []domorder.Item{}
		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.loadItems(ctx, byID); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, byID map[string]*domorder.Order) error {
	placeholders := make([]string, 0, len(byID))
	args := make([]any, 0, len(byID))
	for id := range byID {
		args = append(args, id)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, order_id, product_id, name, unit_price_cents, quantity
        FROM order_items
        WHERE order_id IN (`+strings.Join(placeholders, ",")+`)
        ORDER BY id
    `, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domorder.Item
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity)
		if err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}
