package product

import (
	"time"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
)

type Product struct {
	ID           string
	Name         string
	Description  string
	Price        money.Amount
	Image        string
	Stock        int64
	Size         string
	Material     string
	CategoryID   string
	CategoryName string
	IsActive     bool
	CreatedAt    time.Time
}

type ListFilter struct {
	CategoryID string
	Search     string
	PriceMin   *money.Amount
	PriceMax   *money.Amount
	StockMin   *int64
	StockMax   *int64
	OnlyActive bool
}

// BulkFields holds the overwritable fields of a bulk update. Nil fields
// are left untouched.
type BulkFields struct {
	CategoryID *string
	IsActive   *bool
}
