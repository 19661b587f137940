package order

import (
	"context"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
	domcustomer "github.com/dhdiogoh/cyga-ecommerce/internal/domain/customer"
	domorder "github.com/dhdiogoh/cyga-ecommerce/internal/domain/order"
)

type CartService interface {
	Get(ctx context.Context, cartID string) (*domcart.Cart, error)
	Clear(ctx context.Context, cartID string) (*domcart.Cart, error)
}

type CustomerService interface {
	FindOrCreateByEmail(ctx context.Context, c *domcustomer.Customer) (*domcustomer.Customer, error)
}

type Service struct {
	repo      domorder.Repository
	carts     CartService
	customers CustomerService
}

func NewService(repo domorder.Repository, carts CartService, customers CustomerService) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		customers: customers,
	}
}

// CheckoutInput carries everything the simulated checkout collects:
// the cart to convert, the buyer, the delivery address and the chosen
// payment method.
type CheckoutInput struct {
	CartID   string
	Customer domcustomer.Customer
	Address  domorder.Address
	Payment  domorder.PaymentMethod
}

// Checkout converts the cart into a pending order: snapshots the
// lines, prices shipping from the cart quote, persists the order and
// empties the cart. The cart's snapshot prices are authoritative.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*domorder.Order, error) {
	if !in.Payment.IsValid() {
		return nil, domorder.ErrInvalidPayment
	}

	cart, err := s.carts.Get(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, domorder.ErrEmptyOrderItems
	}

	buyer, err := s.customers.FindOrCreateByEmail(ctx, &in.Customer)
	if err != nil {
		return nil, err
	}

	quote := cart.Quote()
	created, err := s.repo.Create(ctx, &domorder.Order{
		CustomerID:    buyer.ID,
		Status:        domorder.StatusPendente,
		PaymentMethod: in.Payment,
		Address:       in.Address,
		Items:         domorder.ItemsFromCart(lines),
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Total:         quote.Total,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.carts.Clear(ctx, in.CartID); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) List(ctx context.Context, filter domorder.ListFilter) ([]*domorder.Order, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domorder.Status) (*domorder.Order, error) {
	if !status.IsValid() {
		return nil, domorder.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
