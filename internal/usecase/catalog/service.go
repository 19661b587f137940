package catalog

import (
	"context"

	domcatalog "github.com/dhdiogoh/cyga-ecommerce/internal/domain/catalog"
	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

type ProductRepository interface {
	List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error)
	GetByID(ctx context.Context, id string) (*domproduct.Product, error)
}

// Query is one storefront listing request: full-text search and price
// bounds narrow the catalog at the source, the criteria filter and
// sort the remainder.
type Query struct {
	Criteria domcatalog.Criteria
	Search   string
	PriceMin *money.Amount
	PriceMax *money.Amount
}

// Service produces the storefront product listing: the full active
// catalog narrowed by the caller's filter criteria.
type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

// List loads the active catalog and applies the criteria in memory.
// The repository returns newest-first order, which the "recentes" sort
// passes through.
func (s *Service) List(ctx context.Context, q Query) ([]*domproduct.Product, error) {
	products, err := s.repo.List(ctx, domproduct.ListFilter{
		OnlyActive: true,
		Search:     q.Search,
		PriceMin:   q.PriceMin,
		PriceMax:   q.PriceMax,
	})
	if err != nil {
		return nil, err
	}
	return domcatalog.Compute(products, q.Criteria), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	return s.repo.GetByID(ctx, id)
}
