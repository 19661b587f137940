package product

import (
	"context"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	BulkUpdate(ctx context.Context, ids []string, fields BulkFields) (int64, error)
	UpdatePrice(ctx context.Context, id string, price money.Amount) error
}
