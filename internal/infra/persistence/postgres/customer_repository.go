package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	domcustomer "github.com/dhdiogoh/cyga-ecommerce/internal/domain/customer"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO customers (id, name, email, phone, city, state)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, c.ID, c.Name, c.Email, c.Phone, c.City, c.State)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domcustomer.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerRepository) Update(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE customers SET name = $1, email = $2, phone = $3, city = $4, state = $5
        WHERE id = $6
    `, c.Name, c.Email, c.Phone, c.City, c.State, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domcustomer.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcustomer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	return r.getBy(ctx, "id", id)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domcustomer.Customer, error) {
	return r.getBy(ctx, "email", email)
}

func (r *CustomerRepository) getBy(ctx context.Context, column, value string) (*domcustomer.Customer, error) {
	var c domcustomer.Customer
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, phone, city, state, created_at
        FROM customers WHERE `+column+` = $1
    `, value).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.State, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcustomer.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter domcustomer.ListFilter) ([]*domcustomer.Customer, error) {
	query := `
        SELECT id, name, email, phone, city, state, created_at
        FROM customers
    `
	var args []any
	if filter.Search != "" {
		query += " WHERE name ILIKE $1 OR email ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domcustomer.Customer
	for rows.Next() {
		var c domcustomer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.State, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}
