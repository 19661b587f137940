package cart

import (
	"context"
	"errors"
	"log/slog"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

// ProductCatalog is the read-side of the product repository the cart
// needs for add-time snapshots.
type ProductCatalog interface {
	GetByID(ctx context.Context, id string) (*domproduct.Product, error)
}

// Service owns the load/mutate/save cycle of one cart per cart ID.
// Persistence is best-effort: a failed load starts an empty cart and a
// failed save is only logged.
type Service struct {
	store   domcart.Store
	catalog ProductCatalog
	logger  *slog.Logger
}

func NewService(store domcart.Store, catalog ProductCatalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// AddItem looks the product up and merges a snapshot line into the
// cart. An unknown or inactive product is a silent no-op, matching the
// forgiving storefront behavior; the cart is returned unchanged.
func (s *Service) AddItem(ctx context.Context, cartID, productID string, quantity int64) (*domcart.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	c := s.load(ctx, cartID)

	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domproduct.ErrProductNotFound) {
			s.logger.Debug("add to cart ignored, unknown product",
				"cart_id", cartID, "product_id", productID)
			return c, nil
		}
		return nil, err
	}
	if !p.IsActive {
		s.logger.Debug("add to cart ignored, inactive product",
			"cart_id", cartID, "product_id", productID)
		return c, nil
	}

	c.Add(domcart.Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
		Image:     p.Image,
	})
	s.save(ctx, cartID, c)
	return c, nil
}

// RemoveItem deletes the product's line; no-op when absent.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (*domcart.Cart, error) {
	c := s.load(ctx, cartID)
	c.Remove(productID)
	s.save(ctx, cartID, c)
	return c, nil
}

// UpdateQuantity overwrites a line's quantity; zero or less removes
// the line.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int64) (*domcart.Cart, error) {
	c := s.load(ctx, cartID)
	c.SetQuantity(productID, quantity)
	s.save(ctx, cartID, c)
	return c, nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, cartID string) (*domcart.Cart, error) {
	c := s.load(ctx, cartID)
	c.Clear()
	s.save(ctx, cartID, c)
	return c, nil
}

// Get returns the current cart state.
func (s *Service) Get(ctx context.Context, cartID string) (*domcart.Cart, error) {
	return s.load(ctx, cartID), nil
}

func (s *Service) load(ctx context.Context, cartID string) *domcart.Cart {
	lines, err := s.store.Load(ctx, cartID)
	if err != nil {
		// Malformed or unreachable storage degrades to an empty cart.
		s.logger.Warn("failed to load cart, starting empty",
			"cart_id", cartID, "error", err)
		return domcart.New()
	}
	return domcart.FromLines(lines)
}

func (s *Service) save(ctx context.Context, cartID string, c *domcart.Cart) {
	if err := s.store.Save(ctx, cartID, c.Lines()); err != nil {
		s.logger.Warn("failed to save cart", "cart_id", cartID, "error", err)
	}
}
