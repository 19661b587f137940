package product

import (
	"context"
	"math"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	dom "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

func (k DiscountKind) IsValid() bool {
	return k == DiscountPercentage || k == DiscountFixed
}

// MinPrice is the floor a discount can push a price down to.
const MinPrice money.Amount = 1

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if !p.IsActive {
		p.IsActive = true
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existed.Name = p.Name
	}
	if p.Description != "" {
		existed.Description = p.Description
	}
	if p.Price > 0 {
		existed.Price = p.Price
	}
	if p.Image != "" {
		existed.Image = p.Image
	}
	if p.Stock >= 0 {
		existed.Stock = p.Stock
	}
	if p.Size != "" {
		existed.Size = p.Size
	}
	if p.Material != "" {
		existed.Material = p.Material
	}
	if p.CategoryID != "" {
		existed.CategoryID = p.CategoryID
	}
	existed.IsActive = p.IsActive

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}

// BulkUpdate overwrites the given fields on every selected product and
// returns how many rows changed.
func (s *Service) BulkUpdate(ctx context.Context, ids []string, fields dom.BulkFields) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.BulkUpdate(ctx, ids, fields)
}

// BulkDiscount reprices every selected product. Percentage discounts
// scale the price, fixed discounts subtract a reais amount; either way
// the result is floored at R$ 0,01 and rounded to whole centavos.
func (s *Service) BulkDiscount(ctx context.Context, ids []string, kind DiscountKind, amount float64) ([]*dom.Product, error) {
	products, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		p.Price = ApplyDiscount(p.Price, kind, amount)
		if err := s.repo.UpdatePrice(ctx, p.ID, p.Price); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// ApplyDiscount computes the discounted price for a single product.
func ApplyDiscount(price money.Amount, kind DiscountKind, amount float64) money.Amount {
	var next money.Amount
	switch kind {
	case DiscountPercentage:
		next = money.Amount(math.Round(float64(price) * (1 - amount/100)))
	case DiscountFixed:
		next = price - money.FromReais(amount)
	default:
		return price
	}
	if next < MinPrice {
		next = MinPrice
	}
	return next
}
