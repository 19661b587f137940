package order

import "context"

type Repository interface {
	// Create persists the order and its items, decrementing product
	// stock in the same transaction.
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
}
